package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/sinkgen/sinkgen"
)

// rootCmd is the base command for the CLI
var rootCmd = newRootCmd()

// options holds the raw flag values before they are merged with the config file.
type options struct {
	logLevel          string
	configPath        string
	tableCompiler     string
	tableCompilerDir  string
	skipTableCompiler bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "sinkgen <outdir>",
		Short:         "Generate the JSSink wrapper sources for every registered sink kind",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			level, err := logrus.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			logrus.SetLevel(level)
			return generate(cmd.Context(), cfg, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Optional YAML config file")
	cmd.Flags().StringVar(&opts.tableCompiler, "table-compiler", strings.Join(sinkgen.DefaultTableCompiler, " "), "Lookup-table compiler command; the lut.txt and lut.h paths are appended")
	cmd.Flags().StringVar(&opts.tableCompilerDir, "table-compiler-dir", "", "Working directory for the table compiler; relative script paths such as create-hash-table.ts resolve against it (default: current directory)")
	cmd.Flags().BoolVar(&opts.skipTableCompiler, "skip-table-compiler", false, "Write the three sources only, without compiling JSSink.lut.h")
	return cmd
}

// resolveConfig layers explicitly set flags over the config file over the defaults.
func resolveConfig(cmd *cobra.Command, opts options) (Config, error) {
	cfg := DefaultConfig()
	if opts.configPath != "" {
		loaded, err := LoadConfig(opts.configPath)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("table-compiler") {
		cfg.TableCompiler.Command = strings.Fields(opts.tableCompiler)
	}
	if flags.Changed("table-compiler-dir") {
		cfg.TableCompiler.Dir = opts.tableCompilerDir
	}
	if flags.Changed("skip-table-compiler") {
		cfg.TableCompiler.Skip = opts.skipTableCompiler
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func generate(ctx context.Context, cfg Config, outDir string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	var compiler sinkgen.Compiler
	if !cfg.TableCompiler.Skip {
		tc := sinkgen.NewTableCompiler(cfg.TableCompiler.Command)
		tc.Dir = cfg.TableCompiler.Dir
		compiler = tc
	}

	gen := sinkgen.NewGenerator(sinkgen.DefaultRegistry(), sinkgen.WithCompiler(compiler))
	_, err := gen.Run(ctx, outDir)
	return err
}

// exitCode maps a failed run to the process status: the table compiler's
// own status when it failed, 1 otherwise.
func exitCode(err error) int {
	var toolErr *sinkgen.ToolExitError
	if errors.As(err, &toolErr) && toolErr.Code > 0 {
		return toolErr.Code
	}
	return 1
}

func configureLogging(out *os.File) {
	tty := isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
	logrus.SetOutput(out)
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:   tty,
		DisableColors: !tty,
		FullTimestamp: true,
	})
}

// Execute runs the CLI root command
func Execute() {
	configureLogging(os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(exitCode(err))
	}
}
