package main

import (
	"fmt"
	"os"

	"Conexoes/pkg/config"

	"github.com/spf13/cobra"
)

var (
	forceInit bool
	logLines  int
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

// logsCmd prints the tail of debug.log
var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the last lines of the debug log",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), appLog.GetLastLines(logLines))
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing file")
	logsCmd.Flags().IntVarP(&logLines, "lines", "n", 20, "Number of lines to show")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.GetConfigPaths("")[0]
	}

	if _, err := os.Stat(path); err == nil {
		if !forceInit {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		appLog.Warn("overwriting existing config %s", path)
	}
	if err := config.DefaultConfig().Save(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	appLog.Info("wrote default config to %s", path)
	fmt.Fprintf(cmd.OutOrStdout(), "Configuração criada em %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "source:       %s\n", cfgPath)
	fmt.Fprintf(out, "start_screen: %s\n", cfg.InitialState().Screen)
	fmt.Fprintf(out, "log_level:    %s\n", cfg.LogLevel)
	fmt.Fprintf(out, "log_dir:      %s\n", cfg.LogDir)
	fmt.Fprintf(out, "log_file:     %s\n", appLog.Path())
	fmt.Fprintf(out, "ui.theme:     %s\n", cfg.UI.Theme)
	fmt.Fprintf(out, "ui.show_help: %t\n", cfg.UI.ShowHelp)
	fmt.Fprintf(out, "ui.mouse:     %t\n", cfg.UI.Mouse)
	fmt.Fprintf(out, "ui.max_width: %d\n", cfg.UI.MaxWidth)
	return nil
}
