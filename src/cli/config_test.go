// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/H0llyW00dzZ/jsonrpc-request/src/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		expected func(t *testing.T, c *Config)
	}{
		{
			name: "defaults without file",
			expected: func(t *testing.T, c *Config) {
				assert.Equal(t, request.SourceCounter, c.IDSource.Kind)
				assert.Equal(t, 1, c.IDSource.Start)
				assert.Equal(t, defaultHexWidth, c.IDSource.Width)
				assert.Equal(t, "text", c.Log.Format)
				assert.False(t, c.Output.Compact)
			},
		},
		{
			name:    "JSON file",
			file:    "config.json",
			content: `{"idSource": {"kind": "hex", "width": 4}, "output": {"validate": true}}`,
			expected: func(t *testing.T, c *Config) {
				assert.Equal(t, request.SourceRandomHex, c.IDSource.Kind)
				assert.Equal(t, 4, c.IDSource.Width)
				assert.Equal(t, 1, c.IDSource.Start, "missing values keep defaults")
				assert.True(t, c.Output.Validate)
			},
		},
		{
			name: "YAML file",
			file: "config.YML",
			content: `
idSource:
  kind: uuid
log:
  format: json
`,
			expected: func(t *testing.T, c *Config) {
				assert.Equal(t, request.SourceUUID, c.IDSource.Kind)
				assert.Equal(t, "json", c.Log.Format)
			},
		},
		{
			name:    "invalid values reset to defaults",
			file:    "config.yaml",
			content: "idSource:\n  kind: \"\"\n  width: -3\nlog:\n  format: \"\"\n",
			expected: func(t *testing.T, c *Config) {
				assert.Equal(t, request.SourceCounter, c.IDSource.Kind)
				assert.Equal(t, defaultHexWidth, c.IDSource.Width)
				assert.Equal(t, "text", c.Log.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(ConfigFileEnv, "")
			t.Setenv(IDSourceEnv, "")

			path := ""
			if tt.file != "" {
				path = writeConfig(t, tt.file, tt.content)
			}

			c, err := loadConfig(path)
			require.NoError(t, err)
			tt.expected(t, c)
		})
	}
}

func TestLoadConfig_EnvPath(t *testing.T) {
	path := writeConfig(t, "env.json", `{"idSource": {"kind": "xid"}}`)
	t.Setenv(ConfigFileEnv, path)
	t.Setenv(IDSourceEnv, "")

	c, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, request.SourceXID, c.IDSource.Kind)
}

func TestLoadConfig_EnvIDSourceOverride(t *testing.T) {
	path := writeConfig(t, "config.json", `{"idSource": {"kind": "xid"}}`)
	t.Setenv(ConfigFileEnv, "")
	t.Setenv(IDSourceEnv, request.SourceHexCounter)

	c, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, request.SourceHexCounter, c.IDSource.Kind)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Setenv(ConfigFileEnv, "")
	t.Setenv(IDSourceEnv, "")

	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = loadConfig(writeConfig(t, "bad.json", `{"idSource":`))
	assert.ErrorContains(t, err, "failed to parse JSON config file")

	_, err = loadConfig(writeConfig(t, "bad.yaml", "idSource: [unterminated"))
	assert.ErrorContains(t, err, "failed to parse YAML config file")
}

func TestDetectConfigFormat(t *testing.T) {
	assert.Equal(t, configFormatYAML, detectConfigFormat("a.yaml"))
	assert.Equal(t, configFormatYAML, detectConfigFormat("a.YML"))
	assert.Equal(t, configFormatJSON, detectConfigFormat("a.json"))
	assert.Equal(t, configFormatJSON, detectConfigFormat("noext"))
}

func TestConfig_NewIDSource(t *testing.T) {
	c := &Config{}
	c.IDSource.Kind = request.SourceCounter
	c.IDSource.Start = 7

	src, err := c.NewIDSource()
	require.NoError(t, err)
	assert.Equal(t, 7, src.Next())
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{input: "42", expected: json.Number("42")},
		{input: "Foo", expected: "Foo"},
		{input: `"quoted"`, expected: "quoted"},
		{input: "true", expected: true},
		{input: "null", expected: nil},
		{input: "1 2", expected: "1 2"},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseValue(tt.input))
		})
	}
}

func TestParseArgs(t *testing.T) {
	args, err := parseArgs([]string{"Foo"}, []string{"age=42", "tag=a=b"})
	require.NoError(t, err)
	require.Len(t, args, 3)
	assert.Equal(t, "Foo", args[0])

	kw, ok := args[2].(request.Field)
	require.True(t, ok)
	assert.Equal(t, "tag", kw.Name)
	assert.Equal(t, "a=b", kw.Value)
}
