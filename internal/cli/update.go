package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/murkotick/product-media-catalog/internal/app/product/dto"
)

func newUpdateCommand(a *app) *cobra.Command {
	var name, description, price, imageURL string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Overwrite a product's fields; flags not given keep their stored value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			p, err := a.catalog.Read(ctx, id)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("product %d: %w", id, ErrProductNotFound)
			}

			flags := cmd.Flags()
			newName, newDescription, newPrice, newImage := p.Name(), p.Description(), p.Price(), p.ImageURL()
			if flags.Changed("name") {
				newName = name
			}
			if flags.Changed("description") {
				newDescription = description
			}
			if flags.Changed("price") {
				if newPrice, err = parsePrice(price); err != nil {
					return err
				}
			}
			if flags.Changed("image-url") {
				newImage = imageURL
			}

			if err := p.UpdateDetails(newName, newDescription, newPrice, newImage); err != nil {
				return err
			}

			ok, err := a.catalog.Update(ctx, p)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("product %d: %w", id, ErrProductNotFound)
			}
			return printJSON(cmd.OutOrStdout(), dto.FromDomain(p))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&price, "price", "", "new price as a decimal")
	cmd.Flags().StringVar(&imageURL, "image-url", "", "new image reference; empty clears it")
	return cmd
}
