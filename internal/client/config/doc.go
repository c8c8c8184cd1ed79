// Package config loads runtime configuration for the skicka CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the relay server
//	-q          no progress output
//
// # JSON schema
//
//	{
//	  "server_url": "https://skicka.example",
//	  "quiet": true
//	}
package config
