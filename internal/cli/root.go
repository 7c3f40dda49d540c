// Package cli implements the catalog command line.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/murkotick/product-media-catalog/internal/app/product/catalog"
)

// app carries what commands share once the root pre-run has wired the backends.
type app struct {
	configPath string

	logger    *zap.Logger
	catalog   *catalog.Coordinator
	listLimit int
	closers   []func() error
}

// NewRootCommand returns the catalog command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{})
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Product catalog backed by a relational store and an image object store",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.catalog != nil {
				return nil
			}
			return a.wire(cmd.Context())
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.close()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", os.Getenv("CATALOG_CONFIG"), "path to YAML config file")

	root.AddCommand(
		newCreateCommand(a),
		newGetCommand(a),
		newListCommand(a),
		newUpdateCommand(a),
		newDeleteCommand(a),
		newAttachImageCommand(a),
		newDemoCommand(a),
	)
	return root
}

// Execute runs the CLI until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := &app{}
	root := newRootCommand(a)
	err := root.ExecuteContext(ctx)
	// post-run hooks are skipped when a command fails
	_ = a.close()
	if err != nil {
		root.PrintErrln("Error:", err)
	}
	return err
}

// log returns the wired logger, or a no-op logger when commands run without wiring.
func (a *app) log() *zap.Logger {
	if a.logger == nil {
		return zap.NewNop()
	}
	return a.logger
}
