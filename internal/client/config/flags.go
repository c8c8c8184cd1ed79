package config

import (
	"flag"

	"github.com/dmitrijs2005/skicka/internal/flagx"
)

// Flags shared by every subcommand; everything else is left to the
// subcommand's own flag set.
var globalFlags = []string{"-a", "-q"}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the relay server (default from Config)
//	-q          no progress output
func parseFlags(cfg *Config, args []string) {
	// Filter args to include only those handled here.
	args = flagx.FilterArgs(args, globalFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the relay server")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "no progress output")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
