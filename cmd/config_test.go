package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sinkgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	// GIVEN a config that changes the compiler and log level
	path := writeConfig(t, `
log_level: debug
table_compiler:
  command: [node, hash-table.js]
  dir: /src
`)

	// WHEN it is loaded
	cfg, err := LoadConfig(path)

	// THEN the file values win and untouched fields keep their defaults
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"node", "hash-table.js"}, cfg.TableCompiler.Command)
	assert.Equal(t, "/src", cfg.TableCompiler.Dir)
	assert.False(t, cfg.TableCompiler.Skip)
}

func TestLoadConfig_EmptyFileIsDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_UnknownFieldRejected(t *testing.T) {
	// GIVEN a typo in a key
	path := writeConfig(t, "table_compiler:\n  comand: [bun]\n")

	// WHEN it is loaded
	_, err := LoadConfig(path)

	// THEN strict decoding refuses it
	require.Error(t, err)
	assert.Contains(t, err.Error(), "comand")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"empty command", func(c *Config) { c.TableCompiler.Command = nil }, true},
		{"empty command but skipped", func(c *Config) {
			c.TableCompiler.Command = nil
			c.TableCompiler.Skip = true
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
