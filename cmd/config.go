package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/sinkgen/sinkgen"
)

// Config is the optional sinkgen.yaml file. Flags given on the command line
// take precedence over it.
type Config struct {
	LogLevel      string              `yaml:"log_level"`
	TableCompiler TableCompilerConfig `yaml:"table_compiler"`
}

// TableCompilerConfig describes how JSSink.lut.txt is compiled.
type TableCompilerConfig struct {
	Command []string `yaml:"command"` // lut.txt and lut.h paths are appended
	Dir     string   `yaml:"dir"`     // working directory; relative script paths resolve here
	Skip    bool     `yaml:"skip"`
}

// DefaultConfig is used when no file is given.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		TableCompiler: TableCompilerConfig{
			Command: append([]string(nil), sinkgen.DefaultTableCompiler...),
		},
	}
}

// LoadConfig reads path over the defaults. Unknown keys are errors so a
// typo cannot silently fall back to a default. The result is not validated:
// flags may still override it, so callers run Validate on the final Config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the fields that cannot be checked by decoding alone.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if !c.TableCompiler.Skip && len(c.TableCompiler.Command) == 0 {
		return errors.New("table_compiler.command is empty; set skip: true to disable it")
	}
	return nil
}
