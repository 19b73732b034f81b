package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/enbridge/internal/cli/formatter"
	"github.com/alexanderramin/enbridge/internal/domain"
	"github.com/alexanderramin/enbridge/internal/session"
	"github.com/spf13/cobra"
)

func newExplainCmd(app *App) *cobra.Command {
	var through string

	cmd := &cobra.Command{
		Use:   "explain [SYMBOL]",
		Short: "Print the walkthrough for one metal",
		Long: "Print every stage for one metal. With --through, step through the stages\n" +
			"in order and stop at the given one (en-values, electron-flow, proton-release).",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol, err := app.resolveSymbol(args)
			if err != nil {
				return err
			}

			ctrl := app.newSession()
			if err := ctrl.SelectSymbol(symbol); err != nil {
				return fmt.Errorf("%w (known: %s)", err, knownSymbols(app))
			}

			out := cmd.OutOrStdout()
			if through == "" {
				if err := ctrl.ShowAllStages(); err != nil {
					return err
				}
				m, _ := ctrl.Metrics()
				fmt.Fprint(out, formatter.FormatOverview(m))
				return nil
			}

			target := domain.Stage(through)
			if !target.IsValid() || target == domain.StageSelecting {
				return fmt.Errorf("invalid --through %q (use en-values, electron-flow or proton-release)", through)
			}
			return printThrough(cmd, ctrl, target)
		},
	}

	cmd.Flags().StringVar(&through, "through", "", "Stop after this stage instead of printing the overview")

	return cmd
}

// printThrough advances the session stage by stage, printing each one
// until target has been shown.
func printThrough(cmd *cobra.Command, ctrl *session.Controller, target domain.Stage) error {
	out := cmd.OutOrStdout()
	m, _ := ctrl.Metrics()
	for {
		stage := ctrl.State().Stage()
		in := formatter.StageInstruction(stage, false)
		fmt.Fprintln(out, formatter.FormatInstruction(in))
		fmt.Fprintln(out, formatter.FormatStage(stage, m))
		if stage == target {
			return nil
		}
		if err := ctrl.Advance(); err != nil {
			if errors.Is(err, domain.ErrNoTransition) {
				return nil
			}
			return err
		}
	}
}

// resolveSymbol takes the symbol from args, or asks for one when the
// terminal is interactive.
func (a *App) resolveSymbol(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if !a.interactive() {
		return "", fmt.Errorf("a metal symbol is required (known: %s)", knownSymbols(a))
	}

	var symbol string
	if err := wizardSelectMetal(a.catalog, &symbol).Run(); err != nil {
		return "", fmt.Errorf("selecting metal: %w", err)
	}
	return symbol, nil
}

func knownSymbols(a *App) string {
	metals := a.catalog.Metals()
	syms := make([]string, 0, len(metals))
	for _, m := range metals {
		syms = append(syms, m.Symbol)
	}
	return strings.Join(syms, ", ")
}
