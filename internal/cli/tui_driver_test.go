package cli

import (
	"regexp"
	"testing"

	"github.com/alexanderramin/enbridge/internal/config"
	"github.com/alexanderramin/enbridge/internal/domain"
	"github.com/alexanderramin/enbridge/internal/session"
	"github.com/alexanderramin/enbridge/internal/teatest"
	"github.com/stretchr/testify/require"
)

// testApp builds an App over the built-in catalog.
func testApp(t *testing.T) *App {
	t.Helper()
	app := &App{Config: config.DefaultConfig()}
	require.NoError(t, app.loadCatalog())
	return app
}

// TestDriver wraps teatest.Driver with walkthrough-specific inspection.
type TestDriver struct {
	*teatest.Driver
	Session  *session.Controller
	Recorder *session.RecordingObserver
}

// NewTestDriver builds the root model over a recorded session, sets the
// terminal size and drains Init.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	rec := &session.RecordingObserver{}
	ctrl := session.New(app.catalog, session.WithObserver(rec), session.WithID("test"))
	d := teatest.New(t, newAppModel(app, ctrl), teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d, Session: ctrl, Recorder: rec}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the view currently shown.
func (d *TestDriver) ActiveViewID() ViewID {
	return d.appModel().view.ID()
}

// Stage returns the controller's current stage.
func (d *TestDriver) Stage() domain.Stage {
	return d.Session.State().Stage()
}

// Notice returns the current feedback line.
func (d *TestDriver) Notice() string {
	return d.appModel().state.Notice
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// View returns the rendered output with ANSI styling removed.
func (d *TestDriver) View() string {
	return ansiPattern.ReplaceAllString(d.Driver.View(), "")
}
