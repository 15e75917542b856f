// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/H0llyW00dzZ/jsonrpc-request/src/request"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigFileEnv names the environment variable holding the config file path.
	ConfigFileEnv = "JSONRPC_REQUEST_CONFIG_FILE"
	// IDSourceEnv overrides the identifier source kind from the config file.
	IDSourceEnv = "JSONRPC_REQUEST_ID_SOURCE"

	defaultHexWidth = 8
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config represents the CLI configuration structure.
//
// The configuration can be loaded from a JSON or YAML file given by --config
// or the JSONRPC_REQUEST_CONFIG_FILE environment variable, with defaults
// applied for any missing values.
// Supported file extensions: .json, .yaml, .yml
type Config struct {
	// IDSource: Identifier source used for requests without an explicit id
	IDSource struct {
		// Kind: One of counter, hex-counter, hex, uuid, xid
		Kind string `json:"kind" yaml:"kind"`
		// Start: First value drawn by the counter kinds
		Start int `json:"start" yaml:"start"`
		// Width: Digits per draw for the hex kind
		Width int `json:"width" yaml:"width"`
	} `json:"idSource" yaml:"idSource"`

	// Output: How built payloads are printed
	Output struct {
		// Compact: Print compact JSON instead of the spaced form
		Compact bool `json:"compact" yaml:"compact"`
		// Validate: Check every payload against the JSON-RPC schema
		Validate bool `json:"validate" yaml:"validate"`
	} `json:"output" yaml:"output"`

	// Log: Diagnostic logging on stderr
	Log struct {
		// Format: text or json
		Format string `json:"format" yaml:"format"`
	} `json:"log" yaml:"log"`
}

// NewIDSource builds the identifier source described by c.
func (c *Config) NewIDSource() (request.IDSource, error) {
	return request.NewIDSource(c.IDSource.Kind, c.IDSource.Start, c.IDSource.Width)
}

// detectConfigFormat determines the configuration file format based on file extension,
// matching case-insensitively.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// loadConfig loads CLI configuration from a JSON or YAML file or applies defaults.
//
// Parameters:
//   - configPath: Path to the configuration file (optional, can be empty)
//     Supported formats: .json, .yaml, .yml
//
// Returns:
//   - A pointer to the loaded Config struct with defaults applied
//   - An error if the configuration file cannot be read or parsed
//
// Configuration Priority:
//  1. Default values are set
//  2. JSONRPC_REQUEST_CONFIG_FILE environment variable is checked if configPath is empty
//  3. Config file values override defaults (if file exists and is valid)
//  4. Environment variables override config file values (JSONRPC_REQUEST_ID_SOURCE)
//
// Command-line flags are applied on top of the result by the commands.
func loadConfig(configPath string) (*Config, error) {
	config := &Config{}

	// Set defaults
	config.IDSource.Kind = request.SourceCounter
	config.IDSource.Start = 1
	config.IDSource.Width = defaultHexWidth
	config.Log.Format = "text"

	// Check environment variable for config file path if not provided
	if configPath == "" {
		configPath = os.Getenv(ConfigFileEnv)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		format := detectConfigFormat(configPath)
		if err := unmarshalConfig(data, config, format); err != nil {
			return nil, err
		}

		// Validate and set defaults for invalid values
		if config.IDSource.Kind == "" {
			config.IDSource.Kind = request.SourceCounter
		}
		if config.IDSource.Width <= 0 {
			config.IDSource.Width = defaultHexWidth
		}
		if config.Log.Format == "" {
			config.Log.Format = "text"
		}
	}

	if kind := os.Getenv(IDSourceEnv); kind != "" {
		config.IDSource.Kind = kind
	}

	return config, nil
}
