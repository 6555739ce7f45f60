// Package commands provides the CLI commands for exiled.
package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/exiled-team/exiled/internal/config"
	"github.com/exiled-team/exiled/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Version information set at build time
	Version   = "0.1.0"
	BuildTime = "dev"
)

// Global flags
var (
	printLogs  bool
	logLevel   string
	configFile string
)

// appConfig is loaded once before any subcommand runs.
var appConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "exiled",
	Short: "exiled - typed, cancellable events for game-server plugins",
	Long: `exiled dispatches game-server events to plugins that may veto or
adjust them.

Run 'exiled events' to list the event kinds, or 'exiled simulate' to play a
scenario through the in-memory world with the configured plugins.`,
	Version:           Version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&printLogs, "print-logs", false, "Print logs to stderr")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG|INFO|WARN|ERROR)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file, overrides "+config.EnvConfig)

	rootCmd.SetVersionTemplate(fmt.Sprintf("exiled %s (%s)\n", Version, BuildTime))

	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(debugCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup loads .env, the layered config and the logger.
func setup(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	if configFile != "" {
		os.Setenv(config.EnvConfig, configFile)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return err
	}
	appConfig, err = config.Load(workDir)
	if err != nil {
		return err
	}

	logging.Init(loggingConfig(appConfig))
	return nil
}

// loggingConfig resolves the logger setup. The --log-level flag beats the
// config file. Without --print-logs, logs go to a file under the state dir.
func loggingConfig(cfg *config.Config) logging.Config {
	lc := logging.DefaultConfig()

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	if level != "" {
		lc.Level = logging.ParseLevel(level)
	}

	if printLogs {
		lc.Pretty = cfg.Pretty()
		return lc
	}
	lc.Output = io.Discard
	lc.LogToFile = true
	lc.LogDir = config.GetPaths().LogPath()
	return lc
}
