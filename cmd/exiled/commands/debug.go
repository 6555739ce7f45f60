package commands

import (
	"encoding/json"
	"fmt"

	"github.com/exiled-team/exiled/internal/config"
	"github.com/exiled-team/exiled/internal/logging"
	"github.com/spf13/cobra"
)

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Debug utilities",
	Long:  `Debug utilities for troubleshooting exiled configuration and setup.`,
}

var debugConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runDebugConfig,
}

var debugPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show system paths",
	RunE:  runDebugPaths,
}

func init() {
	debugCmd.AddCommand(debugConfigCmd)
	debugCmd.AddCommand(debugPathsCmd)
}

func runDebugConfig(cmd *cobra.Command, args []string) error {
	data, err := json.MarshalIndent(appConfig, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runDebugPaths(cmd *cobra.Command, args []string) error {
	paths := config.GetPaths()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "exiled System Paths:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Config:     %s\n", paths.Config)
	fmt.Fprintf(out, "  Data:       %s\n", paths.Data)
	fmt.Fprintf(out, "  Cache:      %s\n", paths.Cache)
	fmt.Fprintf(out, "  State:      %s\n", paths.State)
	fmt.Fprintf(out, "  Logs:       %s\n", paths.LogPath())
	fmt.Fprintf(out, "  Scenarios:  %s\n", paths.ScenarioPath())
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Global config:  %s\n", config.GlobalConfigPath())
	if path := logging.GetLogFilePath(); path != "" {
		fmt.Fprintf(out, "  Log file:       %s\n", path)
	}

	return nil
}
