// Package session owns the walkthrough state machine.
//
// A Controller is the only way to mutate session state:
//
//	Selecting --Select--> ComparingValues --Advance--> FlowAnimation --Advance--> ProtonRelease
//	ComparingValues --ShowAllStages--> Overview
//	any --Reset--> Selecting
//
// A Controller is owned by one presentation loop and is not safe for
// concurrent use.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/enbridge/internal/catalog"
	"github.com/alexanderramin/enbridge/internal/chemistry"
	"github.com/alexanderramin/enbridge/internal/domain"
	"github.com/google/uuid"
)

// State is a read-only snapshot of a session.
type State struct {
	Selected *domain.Metal
	Phase    Phase
}

// Stage returns the current stage.
func (s State) Stage() domain.Stage { return s.Phase.Stage() }

// ShowAll reports whether the overview mode is active.
func (s State) ShowAll() bool { return s.Phase.ShowAll() }

// HasSelection reports whether a metal is selected.
func (s State) HasSelection() bool { return s.Selected != nil }

// Controller owns the selected metal and the current phase.
type Controller struct {
	id       string
	catalog  *catalog.Catalog
	observer TransitionObserver
	now      func() time.Time

	selected *domain.Metal
	phase    Phase
}

// Option configures a Controller.
type Option func(*Controller)

// WithObserver sets the transition observer.
func WithObserver(obs TransitionObserver) Option {
	return func(c *Controller) {
		if obs != nil {
			c.observer = obs
		}
	}
}

// WithID overrides the generated session id.
func WithID(id string) Option {
	return func(c *Controller) { c.id = id }
}

// New starts a session in the Selecting phase.
func New(cat *catalog.Catalog, opts ...Option) *Controller {
	c := &Controller{
		id:       uuid.New().String(),
		catalog:  cat,
		observer: NoopObserver{},
		now:      time.Now,
		phase:    Selecting(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID returns the session id.
func (c *Controller) ID() string { return c.id }

// Catalog returns the catalog selections are validated against.
func (c *Controller) Catalog() *catalog.Catalog { return c.catalog }

// State returns a snapshot of the session.
func (c *Controller) State() State {
	s := State{Phase: c.phase}
	if c.selected != nil {
		m := *c.selected
		s.Selected = &m
	}
	return s
}

// Select chooses metal and moves to ComparingValues in sequential mode.
// Reselecting the current metal only resets the phase.
func (c *Controller) Select(metal domain.Metal) error {
	from := c.phase
	if !c.catalog.Contains(metal) {
		err := fmt.Errorf("%w: %q is not in the catalog", domain.ErrInvalidSelection, metal.Symbol)
		c.emit(OpSelect, from, err)
		return err
	}
	m := metal
	c.selected = &m
	c.phase = Sequential(domain.StageComparingValues)
	c.emit(OpSelect, from, nil)
	return nil
}

// SelectSymbol looks up symbol in the catalog and selects it.
func (c *Controller) SelectSymbol(symbol string) error {
	m, ok := c.catalog.Lookup(symbol)
	if !ok {
		err := fmt.Errorf("%w: unknown symbol %q", domain.ErrInvalidSelection, symbol)
		c.emit(OpSelect, c.phase, err)
		return err
	}
	return c.Select(m)
}

// Reset clears the selection and returns to Selecting. It always succeeds.
func (c *Controller) Reset() {
	from := c.phase
	c.selected = nil
	c.phase = Selecting()
	c.emit(OpReset, from, nil)
}

// Advance moves ComparingValues to FlowAnimation and FlowAnimation to
// ProtonRelease. It returns domain.ErrInvalidState when nothing is selected
// and domain.ErrNoTransition when the phase has no successor, which
// includes the overview mode. Neither error changes the state.
func (c *Controller) Advance() error {
	from := c.phase
	if c.selected == nil {
		err := fmt.Errorf("%w: advance requires a selected metal", domain.ErrInvalidState)
		c.emit(OpAdvance, from, err)
		return err
	}
	next, ok := c.nextPhase()
	if !ok {
		err := fmt.Errorf("%w: %s has no successor", domain.ErrNoTransition, from)
		c.emit(OpAdvance, from, err)
		return err
	}
	c.phase = next
	c.emit(OpAdvance, from, nil)
	return nil
}

// ShowAllStages switches to the overview of every stage from
// ComparingValues onward.
func (c *Controller) ShowAllStages() error {
	from := c.phase
	if c.selected == nil {
		err := fmt.Errorf("%w: show all requires a selected metal", domain.ErrInvalidState)
		c.emit(OpShowAll, from, err)
		return err
	}
	c.phase = Overview()
	c.emit(OpShowAll, from, nil)
	return nil
}

// CanAdvance reports whether Advance would change the state.
func (c *Controller) CanAdvance() bool {
	if c.selected == nil {
		return false
	}
	_, ok := c.nextPhase()
	return ok
}

// Metrics derives display values for the selected metal.
func (c *Controller) Metrics() (chemistry.Metrics, bool) {
	if c.selected == nil {
		return chemistry.Metrics{}, false
	}
	return chemistry.Derive(*c.selected, c.catalog.Reference()), true
}

// VisibleStages lists the stages the presentation should render.
func (c *Controller) VisibleStages() []domain.Stage {
	return c.phase.VisibleStages()
}

func (c *Controller) nextPhase() (Phase, bool) {
	if c.phase.ShowAll() {
		return c.phase, false
	}
	next, ok := c.phase.Stage().Next()
	if !ok {
		return c.phase, false
	}
	return Sequential(next), true
}

func (c *Controller) emit(op Operation, from Phase, err error) {
	event := TransitionEvent{
		SessionID: c.id,
		Op:        op,
		From:      from,
		To:        c.phase,
		Err:       err,
		At:        c.now(),
	}
	if c.selected != nil {
		event.Symbol = c.selected.Symbol
	}
	c.observer.ObserveTransition(context.Background(), event)
}
