package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/enbridge/internal/domain"
)

// Operation names a controller entry point.
type Operation string

const (
	OpSelect  Operation = "select"
	OpReset   Operation = "reset"
	OpAdvance Operation = "advance"
	OpShowAll Operation = "show_all"
)

// TransitionEvent records one controller operation.
type TransitionEvent struct {
	SessionID string
	Op        Operation
	From      Phase
	To        Phase
	Symbol    string // selected metal after the operation, empty if none
	Err       error
	At        time.Time
}

// TransitionObserver receives an event after every controller operation.
type TransitionObserver interface {
	ObserveTransition(ctx context.Context, event TransitionEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveTransition(context.Context, TransitionEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes transition events to w as slog text records.
// A nil writer yields a NoopObserver.
func NewLogObserver(w io.Writer) TransitionObserver {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
}

func (o *logObserver) ObserveTransition(ctx context.Context, event TransitionEvent) {
	attrs := []any{
		"session", event.SessionID,
		"op", string(event.Op),
		"from", event.From.String(),
		"to", event.To.String(),
		"mode", string(event.To.Mode()),
	}
	if event.Symbol != "" {
		attrs = append(attrs, "metal", event.Symbol)
	}

	switch {
	case event.Err == nil:
		o.logger.InfoContext(ctx, "stage_transition", attrs...)
	case errors.Is(event.Err, domain.ErrNoTransition):
		o.logger.DebugContext(ctx, "stage_transition", append(attrs, "result", "no_op")...)
	default:
		o.logger.ErrorContext(ctx, "stage_transition", append(attrs, "error", event.Err.Error())...)
	}
}

// RecordingObserver keeps every event in memory.
type RecordingObserver struct {
	Events []TransitionEvent
}

func (r *RecordingObserver) ObserveTransition(_ context.Context, event TransitionEvent) {
	r.Events = append(r.Events, event)
}
