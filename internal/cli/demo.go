package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/murkotick/product-media-catalog/internal/app/product/domain"
	"github.com/murkotick/product-media-catalog/internal/app/product/dto"
)

type demoResult struct {
	Created dto.ProductDTO   `json:"created"`
	Listed  []dto.ProductDTO `json:"listed"`
}

func newDemoCommand(a *app) *cobra.Command {
	var image string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Add a sample laptop, read it back and list the newest product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			id, err := a.catalog.Create(ctx, "Sample Laptop", "A sample laptop product", domain.MustMoney("1299.99"), image)
			if err != nil {
				return err
			}

			p, err := a.catalog.Read(ctx, id)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("product %d: %w", id, ErrProductNotFound)
			}

			listed, err := a.catalog.List(ctx, 1)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), demoResult{
				Created: dto.FromDomain(p),
				Listed:  dto.FromDomainList(listed),
			})
		},
	}

	cmd.Flags().StringVar(&image, "image", "", "optional image file for the sample product")
	return cmd
}
