package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type attachResult struct {
	ProductID int64  `json:"product_id"`
	ImageURL  string `json:"image_url"`
}

func newAttachImageCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "attach-image <id> <path>",
		Short: "Upload an image for an existing product, replacing any previous one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			url, ok, err := a.catalog.AttachImage(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("product %d: %w", id, ErrProductNotFound)
			}
			return printJSON(cmd.OutOrStdout(), attachResult{ProductID: id, ImageURL: url})
		},
	}
}
