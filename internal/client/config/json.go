package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/skicka/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerURL *string `json:"server_url"`
	Quiet     *bool   `json:"quiet"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Only keys present in the file are applied. Read or
// unmarshal errors panic.
func parseJson(cfg *Config, args []string) {
	jsonConfigFile := flagx.ConfigPath(args)
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != nil {
		cfg.ServerURL = *jc.ServerURL
	}
	if jc.Quiet != nil {
		cfg.Quiet = *jc.Quiet
	}
}
