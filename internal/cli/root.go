package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/enbridge/internal/catalog"
	"github.com/alexanderramin/enbridge/internal/config"
	"github.com/alexanderramin/enbridge/internal/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds configuration and collaborators shared by all commands.
type App struct {
	Config config.Config

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// LogOutput receives transition logs when Config.LogTransitions is set.
	LogOutput io.Writer

	// RunProgram runs a bubbletea model to completion. Nil uses tea.NewProgram.
	RunProgram func(m tea.Model, opts ...tea.ProgramOption) error

	catalog *catalog.Catalog
}

// NewRootCmd creates the top-level "enbridge" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "enbridge",
		Short: "Interactive electronegativity bridge: from EN difference to acidic behavior",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.loadCatalog()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return app.runWalkthrough()
			}
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	config.BindFlags(root.PersistentFlags(), &app.Config)

	root.AddCommand(
		newWalkCmd(app),
		newCatalogCmd(app),
		newExplainCmd(app),
	)

	return root
}

func (a *App) loadCatalog() error {
	if a.catalog != nil {
		return nil
	}
	cat, err := catalog.Open(a.Config.CatalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	a.catalog = cat
	return nil
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// newSession starts a fresh walkthrough session over the loaded catalog.
func (a *App) newSession() *session.Controller {
	var obs session.TransitionObserver = session.NoopObserver{}
	if a.Config.LogTransitions {
		w := a.LogOutput
		if w == nil {
			w = os.Stderr
		}
		obs = session.NewLogObserver(w)
	}
	return session.New(a.catalog, session.WithObserver(obs))
}

func (a *App) runWalkthrough() error {
	var opts []tea.ProgramOption
	if a.Config.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	m := newAppModel(a, a.newSession())

	if a.RunProgram != nil {
		return a.RunProgram(m, opts...)
	}
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
