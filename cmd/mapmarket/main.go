// Command mapmarket serves and manages the MapMarket product catalogue.
package main

import (
	"os"

	"github.com/mapmarket/mapmarket-api/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
