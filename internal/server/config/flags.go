package config

import (
	"flag"

	"github.com/dmitrijs2005/skicka/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string     HTTP listen address (e.g. "127.0.0.1:8080")
//	-r string     remote base URL used to build share links
//	-m string     motto printed by GET /
//	-i duration   intent timeout (e.g. "5m")
//	-t duration   chunk timeout (e.g. "2m")
//	-s size       max transfer size (e.g. "8GB", "512MiB")
//	-n int        max pending connections
//	-l int        max request URI length, 0 disables
//	-g string     gRPC health endpoint address, empty disables
//	-w duration   shutdown grace period
//
// Arguments are pre-filtered with flagx.FilterArgs so that -c/-config and
// anything else unknown is ignored here.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-r", "-m", "-i", "-t", "-s", "-n", "-l", "-g", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ListenAddr, "a", config.ListenAddr, "address and port to listen on")
	fs.StringVar(&config.RemoteURL, "r", config.RemoteURL, "remote URL at which this service is installed")
	fs.StringVar(&config.Motto, "m", config.Motto, "motto printed during GET /")
	fs.DurationVar(&config.IntentTimeout, "i", config.IntentTimeout, "max time between upload start and download start")
	fs.DurationVar(&config.ChunkTimeout, "t", config.ChunkTimeout, "max time between consecutive chunks")
	fs.Var(&config.MaxTransferSize, "s", "max transfer size")
	fs.IntVar(&config.MaxConnections, "n", config.MaxConnections, "max pending connections")
	fs.IntVar(&config.MaxRequestLength, "l", config.MaxRequestLength, "max request URI length (0 disables)")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC health endpoint address")
	fs.DurationVar(&config.ShutdownTimeout, "w", config.ShutdownTimeout, "shutdown grace period")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
