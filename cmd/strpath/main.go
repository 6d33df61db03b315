package main

import (
	"fmt"
	"os"

	"github.com/atinylittleshell/strpath/internal/completion"
	"github.com/atinylittleshell/strpath/internal/config"
	"github.com/atinylittleshell/strpath/internal/core"
	"github.com/atinylittleshell/strpath/internal/listener"
	"github.com/atinylittleshell/strpath/internal/styles"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var BUILD_VERSION = "dev"

// app holds what every subcommand needs once the root command has run.
type app struct {
	configPath string
	debug      bool
	logLevel   string
	noColor    bool

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	a := &app{}
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.ERROR(err.Error()))
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "strpath",
		Short: "Filesystem path completion inside string literals",
		Long: `strpath offers filesystem paths as completions while the cursor is inside
a quoted string. Use "strpath edit" for an interactive editor or
"strpath query" for a one-shot completion.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default is ~/.strpath/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "panic on listener invariant violations")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newEditCmd(a))
	rootCmd.AddCommand(newQueryCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup loads the configuration and initializes the logger.
func (a *app) setup() error {
	path := a.configPath
	if path == "" {
		path = core.ConfigFile()
	}

	result, err := config.NewLoader(nil).LoadFromFile(path)
	if err != nil {
		return err
	}
	a.cfg = result.Config

	if a.logLevel != "" {
		a.cfg.LogLevel = a.logLevel
	}
	if a.debug {
		a.cfg.Debug = true
	}

	a.logger, err = initializeLogger(a.cfg)
	if err != nil {
		return err
	}
	a.logger.Info("-------- new strpath session --------", zap.Any("args", os.Args))
	for _, loadErr := range result.Errors {
		a.logger.Warn("config error", zap.String("path", path), zap.Error(loadErr))
	}

	if a.noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		styles.DisableColor()
	}
	return nil
}

// newManager creates the listener manager shared by all views of a session.
func (a *app) newManager(enabled bool) (*listener.Manager, error) {
	opts := a.cfg.GeneratorOptions()
	opts.Logger = a.logger.Named("completion")

	generator, err := completion.NewGenerator(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create completion generator: %w", err)
	}

	return listener.NewManager(listener.Options{
		Settings:  listener.NewSettings(enabled),
		Generator: generator,
		Strict:    a.cfg.Debug,
		Logger:    a.logger.Named("listener"),
	}), nil
}

func initializeLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := cfg.ParsedLogLevel()
	if err != nil {
		return nil, err
	}
	logLevel := zap.NewAtomicLevelAt(level)
	if BUILD_VERSION == "dev" {
		logLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = logLevel
	// The editor owns the terminal, so logs only go to the file.
	// Use `tail -f ~/.strpath/strpath.log` to follow them.
	loggerConfig.OutputPaths = []string{
		core.LogFile(),
	}

	return loggerConfig.Build()
}
