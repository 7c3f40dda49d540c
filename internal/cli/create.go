package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/murkotick/product-media-catalog/internal/app/product/dto"
)

func newCreateCommand(a *app) *cobra.Command {
	var name, description, price, image string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product, optionally uploading its image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			amount, err := parsePrice(price)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			id, err := a.catalog.Create(ctx, name, description, amount, image)
			if err != nil {
				if id != 0 {
					a.log().Warn("product created without image", zap.Int64("product_id", id), zap.Error(err))
					return fmt.Errorf("product %d created but image not attached (retry with attach-image): %w", id, err)
				}
				return err
			}

			p, err := a.catalog.Read(ctx, id)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("product %d: %w", id, ErrProductNotFound)
			}
			return printJSON(cmd.OutOrStdout(), dto.FromDomain(p))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "product name")
	cmd.Flags().StringVar(&description, "description", "", "product description")
	cmd.Flags().StringVar(&price, "price", "", "price as a decimal, e.g. 1299.99")
	cmd.Flags().StringVar(&image, "image", "", "local image file to upload")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}
