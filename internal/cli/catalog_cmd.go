package cli

import (
	"fmt"

	"github.com/alexanderramin/enbridge/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the metal cations and their EN difference to the reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			title := "Metal cations bonded to " + app.catalog.Reference().Name
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox(title, formatter.FormatCatalog(app.catalog)))
			return nil
		},
	}
}
