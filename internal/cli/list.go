package cli

import (
	"github.com/spf13/cobra"

	"github.com/murkotick/product-media-catalog/internal/app/product/dto"
)

func newListCommand(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit <= 0 {
				limit = a.listLimit
			}

			products, err := a.catalog.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.FromDomainList(products))
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of products (default from config)")
	return cmd
}
