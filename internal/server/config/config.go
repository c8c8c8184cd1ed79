// Package config handles configuration for the relay server, including
// defaults, JSON overlay, and command-line flags.
package config

import (
	"errors"
	"os"
	"time"

	"github.com/dmitrijs2005/skicka/internal/sizex"
)

// Config holds runtime settings for the skicka relay server.
//
// Fields:
//   - ListenAddr: bind address of the public HTTP endpoint.
//   - RemoteURL: public base URL; when set, uploaders are shown a full link
//     instead of the bare code.
//   - Motto: body of GET /.
//   - IntentTimeout: maximum time between an upload starting and the matching
//     download starting. Transmission time is not included.
//   - ChunkTimeout: maximum time between retrieving and sending consecutive chunks.
//   - MaxTransferSize: cumulative byte ceiling of a single transfer.
//   - MaxConnections: ceiling of pending (unclaimed) uploads.
//   - MaxRequestLength: longest accepted request URI; 0 disables the check.
//   - EndpointAddrGRPC: bind address of the gRPC health endpoint; empty disables it.
//   - ShutdownTimeout: grace period for in-flight transfers on shutdown.
type Config struct {
	ListenAddr       string
	RemoteURL        string
	Motto            string
	IntentTimeout    time.Duration
	ChunkTimeout     time.Duration
	MaxTransferSize  sizex.Size
	MaxConnections   int
	MaxRequestLength int
	EndpointAddrGRPC string
	ShutdownTimeout  time.Duration
}

// LoadDefaults populates Config with the stock settings.
func (c *Config) LoadDefaults() {
	c.ListenAddr = "127.0.0.1:8080"
	c.RemoteURL = ""
	c.Motto = ""
	c.IntentTimeout = 5 * time.Minute
	c.ChunkTimeout = 2 * time.Minute
	c.MaxTransferSize = 8 * 1000 * 1000 * 1000
	c.MaxConnections = 1024
	c.MaxRequestLength = 2048
	c.EndpointAddrGRPC = ""
	c.ShutdownTimeout = 5 * time.Second
}

// Validate reports settings the relay cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.ListenAddr == "" {
		errs = append(errs, errors.New("listen address is empty"))
	}
	if c.IntentTimeout <= 0 {
		errs = append(errs, errors.New("intent timeout must be positive"))
	}
	if c.ChunkTimeout <= 0 {
		errs = append(errs, errors.New("chunk timeout must be positive"))
	}
	if c.MaxTransferSize == 0 {
		errs = append(errs, errors.New("max transfer size must be positive"))
	}
	if c.MaxConnections <= 0 {
		errs = append(errs, errors.New("max connections must be positive"))
	}
	if c.MaxRequestLength < 0 {
		errs = append(errs, errors.New("max request length must not be negative"))
	}
	return errors.Join(errs...)
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
