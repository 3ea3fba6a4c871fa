// Package root contains the root command for the application
package root

import (
	"fmt"
	"sync"

	"fjacquet/sales-report/internal/config"
	"fjacquet/sales-report/internal/container"
	"fjacquet/sales-report/internal/logging"

	"github.com/spf13/cobra"
)

// GlobalFlags are the persistent flags shared by every command.
type GlobalFlags struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewNopLogger()

	// AppContainer holds the dependencies built from configuration in PersistentPreRunE.
	AppContainer *container.Container

	// Flags holds the persistent flag values.
	Flags = GlobalFlags{}

	initOnce sync.Once

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "sales-report",
		Short: "A CLI tool to chart revenue per product and per day from sales CSV files.",
		Long: `sales-report is a CLI tool that reads headerless sales CSV files
(product name, quantity, price, ISO date), sums the price column per product
and per calendar day, and reports the best product and the best day as bar charts.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		RunE:              func(cmd *cobra.Command, args []string) error { return cmd.Help() },
		PersistentPreRunE: setup,
	}
)

// Init registers the persistent flags. It is safe to call more than once.
func Init() {
	initOnce.Do(func() {
		Cmd.PersistentFlags().StringVar(&Flags.ConfigFile, "config", "", "Config file (default: config.yaml in $HOME/.sales-report, .sales-report or .)")
		Cmd.PersistentFlags().StringVar(&Flags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
		Cmd.PersistentFlags().StringVar(&Flags.LogFormat, "log-format", "", "Log format (text or json)")
	})
}

// setup loads .env and configuration, applies flag overrides and builds the container.
func setup(cmd *cobra.Command, args []string) error {
	config.LoadEnv()

	cfg, err := config.InitializeConfigFile(Flags.ConfigFile)
	if err != nil {
		return err
	}
	if Flags.LogLevel != "" {
		cfg.Log.Level = Flags.LogLevel
	}
	if Flags.LogFormat != "" {
		cfg.Log.Format = Flags.LogFormat
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return err
	}
	AppContainer = c
	Log = c.GetLogger()
	Log.Debug("Configuration loaded", logging.F(logging.FieldOperation, cmd.Name()))
	return nil
}

// Container returns AppContainer or an error when setup has not run.
func Container() (*container.Container, error) {
	if AppContainer == nil {
		return nil, fmt.Errorf("container not initialized")
	}
	return AppContainer, nil
}
