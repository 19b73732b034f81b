package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func newWalkCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "walk",
		Short: "Start the interactive four-stage walkthrough",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() && app.RunProgram == nil {
				return errors.New("walk needs an interactive terminal; try 'enbridge explain SYMBOL'")
			}
			return app.runWalkthrough()
		},
	}
}
