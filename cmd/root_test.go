package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/sinkgen/sinkgen"
)

func runRoot(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestRoot_RequiresExactlyOneOutputDirectory(t *testing.T) {
	assert.Error(t, runRoot(t))
	assert.Error(t, runRoot(t, "a", "b"))
}

func TestRoot_SkipTableCompiler_WritesSources(t *testing.T) {
	// GIVEN an empty output directory
	out := filepath.Join(t.TempDir(), "generated")

	// WHEN sinkgen runs without the table compiler
	err := runRoot(t, "--skip-table-compiler", "--log", "warn", out)

	// THEN the three sources exist and the compiled table does not
	require.NoError(t, err)
	for _, name := range []string{sinkgen.DeclarationsFile, sinkgen.DefinitionsFile, sinkgen.LookupTableFile} {
		assert.FileExists(t, filepath.Join(out, name))
	}
	assert.NoFileExists(t, filepath.Join(out, sinkgen.CompiledTableFile))
}

func TestRoot_TableCompilerFailure_PropagatesExitCode(t *testing.T) {
	// GIVEN a table compiler that exits with status 3
	cfg := filepath.Join(t.TempDir(), "sinkgen.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("table_compiler:\n  command: [sh, -c, 'exit 3']\n"), 0o644))

	// WHEN sinkgen runs with it
	err := runRoot(t, "--config", cfg, t.TempDir())

	// THEN the process would exit with the compiler's status
	require.Error(t, err)
	assert.Equal(t, 3, exitCode(err))
}

func TestRoot_FlagsOverrideConfig(t *testing.T) {
	// GIVEN a config with a failing compiler
	cfg := filepath.Join(t.TempDir(), "sinkgen.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("table_compiler:\n  command: [sh, -c, 'exit 3']\n"), 0o644))

	// WHEN the flag disables the compiler
	err := runRoot(t, "--config", cfg, "--skip-table-compiler", t.TempDir())

	// THEN the run succeeds
	assert.NoError(t, err)
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	err := runRoot(t, "--log", "loud", "--skip-table-compiler", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
}

func TestRoot_FlagsRescueInvalidConfigValues(t *testing.T) {
	tests := []struct {
		name   string
		config string
		flags  []string
	}{
		{"log level", "log_level: verbose\n", []string{"--log", "debug", "--skip-table-compiler"}},
		{"empty command", "table_compiler:\n  command: []\n", []string{"--skip-table-compiler"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// GIVEN a config file that is invalid on its own
			cfg := filepath.Join(t.TempDir(), "sinkgen.yaml")
			require.NoError(t, os.WriteFile(cfg, []byte(tt.config), 0o644))

			// WHEN a flag overrides the offending value
			args := append([]string{"--config", cfg}, tt.flags...)
			err := runRoot(t, append(args, t.TempDir())...)

			// THEN the run succeeds
			assert.NoError(t, err)
		})
	}
}

func TestRoot_InvalidConfigWithoutOverride(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "sinkgen.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("log_level: verbose\n"), 0o644))

	err := runRoot(t, "--config", cfg, "--skip-table-compiler", t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "verbose")
}

func TestResolveConfig_TableCompilerDir(t *testing.T) {
	// GIVEN a config naming one directory and a flag naming another
	cfgPath := filepath.Join(t.TempDir(), "sinkgen.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("table_compiler:\n  dir: /from/config\n"), 0o644))
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--table-compiler-dir", "/src/codegen"}))

	// WHEN the configuration is resolved
	cfg, err := resolveConfig(cmd, options{configPath: cfgPath, tableCompilerDir: "/src/codegen"})

	// THEN the flag wins
	require.NoError(t, err)
	assert.Equal(t, "/src/codegen", cfg.TableCompiler.Dir)
}
