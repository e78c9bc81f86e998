// Command conexoes runs the Conexões prototype in the terminal and renders
// single screens to stdout.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Conexoes/pkg/config"
	"Conexoes/pkg/content"
	"Conexoes/pkg/logger"
	"Conexoes/pkg/render"
	"Conexoes/pkg/tui"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	verbose    bool

	// Set by PersistentPreRunE
	cfg     *config.Config
	cfgPath string
	appLog  *logger.Logger
)

// rootCmd launches the interactive terminal UI
var rootCmd = &cobra.Command{
	Use:   "conexoes",
	Short: "Conexões - comunidade com consentimento (terminal prototype)",
	Long: `Conexões is a static prototype of a dating and community app.

It renders mock content (a profile, events, one chat thread and a safety
checklist) and switches screens from in-memory state. Nothing is sent over
the network and nothing is persisted.

Run without arguments to start the interactive UI.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, cfgPath, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if verbose {
			cfg.LogLevel = "DEBUG"
		}
		appLog, err = logger.New(cfg.LogDir, cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		appLog.Sugar().Debugw("config loaded", "path", cfgPath, "command", cmd.Name())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if appLog != nil {
			_ = appLog.Sync()
			_ = appLog.Close()
		}
	},
	RunE: runInteractive,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	// No config or log file needed
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "conexoes v%s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(logsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runInteractive starts the terminal UI and blocks until the user quits.
func runInteractive(cmd *cobra.Command, args []string) error {
	catalog, err := content.Load()
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	log := appLog.Sugar()
	app := render.NewApp(cfg.InitialState(), catalog, log)
	log.Infow("starting", "version", version, "session", appLog.Session(), "screen", app.Store.State().Screen)

	// Cancelling ctx makes bubbletea exit even when it is blocked on input
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go watchSignals(ctx, cancel, sigCh, os.Exit)

	if err := tui.Run(ctx, app, cfg, log); err != nil {
		// Cancellation is the shutdown path, not a failure
		if ctx.Err() == nil {
			appLog.Error("tui stopped: %v", err)
			return fmt.Errorf("tui error: %w", err)
		}
	}

	log.Infow("stopped", "renders", app.Renderer.Passes())
	fmt.Fprintln(cmd.OutOrStdout(), "Até logo!")
	return nil
}

// forceExitAfter bounds how long a signalled shutdown may take.
var forceExitAfter = 5 * time.Second

// watchSignals cancels the program on the first signal. A second signal, or
// forceExitAfter without the process exiting, calls exit(1). It returns
// without side effects when ctx ends first.
func watchSignals(ctx context.Context, cancel context.CancelFunc, sigCh <-chan os.Signal, exit func(int)) {
	select {
	case <-sigCh:
	case <-ctx.Done():
		return
	}
	appLog.Info("received shutdown signal")
	cancel()
	select {
	case <-sigCh:
	case <-time.After(forceExitAfter):
	}
	exit(1)
}
