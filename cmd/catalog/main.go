package main

import (
	"os"

	"github.com/murkotick/product-media-catalog/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
