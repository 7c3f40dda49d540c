package cli

import (
	"github.com/spf13/cobra"
)

type deleteResult struct {
	ProductID int64 `json:"product_id"`
	Deleted   bool  `json:"deleted"`
}

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product and its image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			deleted, err := a.catalog.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), deleteResult{ProductID: id, Deleted: deleted})
		},
	}
}
