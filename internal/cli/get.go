package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/murkotick/product-media-catalog/internal/app/product/dto"
)

func newGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			p, err := a.catalog.Read(cmd.Context(), id)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("product %d: %w", id, ErrProductNotFound)
			}
			return printJSON(cmd.OutOrStdout(), dto.FromDomain(p))
		},
	}
}
