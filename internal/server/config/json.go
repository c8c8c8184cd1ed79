package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/skicka/internal/flagx"
	"github.com/dmitrijs2005/skicka/internal/sizex"
	"github.com/dmitrijs2005/skicka/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Pointer fields
// distinguish "absent" from "zero" so that a partial file only overrides
// what it names.
type JsonConfig struct {
	ListenAddr       *string         `json:"listen_addr"`
	RemoteURL        *string         `json:"remote_url"`
	Motto            *string         `json:"motto"`
	IntentTimeout    *timex.Duration `json:"intent_timeout"`
	ChunkTimeout     *timex.Duration `json:"chunk_timeout"`
	MaxTransferSize  *sizex.Size     `json:"max_transfer_size"`
	MaxConnections   *int            `json:"max_connections"`
	MaxRequestLength *int            `json:"max_request_length"`
	EndpointAddrGRPC *string         `json:"endpoint_addr_grpc"`
	ShutdownTimeout  *timex.Duration `json:"shutdown_timeout"`
}

// parseJson overlays config with the JSON file named by -c/-config in args.
// Without such a flag nothing is loaded. Unreadable or malformed files panic.
func parseJson(config *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var c JsonConfig
	if err := json.Unmarshal(data, &c); err != nil {
		panic(err)
	}

	setIf(&config.ListenAddr, c.ListenAddr)
	setIf(&config.RemoteURL, c.RemoteURL)
	setIf(&config.Motto, c.Motto)
	setIf(&config.MaxTransferSize, c.MaxTransferSize)
	setIf(&config.MaxConnections, c.MaxConnections)
	setIf(&config.MaxRequestLength, c.MaxRequestLength)
	setIf(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	if c.IntentTimeout != nil {
		config.IntentTimeout = c.IntentTimeout.Duration
	}
	if c.ChunkTimeout != nil {
		config.ChunkTimeout = c.ChunkTimeout.Duration
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
