// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"fjacquet/sales-report/internal/chart"
	"fjacquet/sales-report/internal/dateutils"
	"fjacquet/sales-report/internal/models"
	"fjacquet/sales-report/internal/report"
	"fjacquet/sales-report/internal/validation"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override (SALES_LOG_LEVEL, ...).
const EnvPrefix = "SALES"

// LogConfig controls the logrus adapter.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// InputConfig describes the sales file read by the report command.
type InputConfig struct {
	Path      string `mapstructure:"path" yaml:"path"`
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// ChartConfig controls both chart renderers.
type ChartConfig struct {
	Width    int    `mapstructure:"width" yaml:"width"`
	Currency string `mapstructure:"currency" yaml:"currency"`
	Locale   string `mapstructure:"locale" yaml:"locale"`
	XLSXPath string `mapstructure:"xlsx_path" yaml:"xlsx_path"`
}

// ReportConfig controls the machine-readable summary.
type ReportConfig struct {
	SummaryPath   string `mapstructure:"summary_path" yaml:"summary_path"`
	SummaryFormat string `mapstructure:"summary_format" yaml:"summary_format"`
}

// GeneratorConfig controls synthetic data generation. Dates are ISO days.
type GeneratorConfig struct {
	Output      string `mapstructure:"output" yaml:"output"`
	Rows        int    `mapstructure:"rows" yaml:"rows"`
	Seed        uint64 `mapstructure:"seed" yaml:"seed"`
	MinQuantity int    `mapstructure:"min_quantity" yaml:"min_quantity"`
	MaxQuantity int    `mapstructure:"max_quantity" yaml:"max_quantity"`
	StartDate   string `mapstructure:"start_date" yaml:"start_date"`
	EndDate     string `mapstructure:"end_date" yaml:"end_date"`
}

// Config represents the complete application configuration
type Config struct {
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
	Input     InputConfig     `mapstructure:"input" yaml:"input"`
	Chart     ChartConfig     `mapstructure:"chart" yaml:"chart"`
	Report    ReportConfig    `mapstructure:"report" yaml:"report"`
	Generator GeneratorConfig `mapstructure:"generator" yaml:"generator"`
}

// InitializeConfig loads configuration from defaults, config.yaml and
// SALES_* environment variables, in increasing order of precedence.
func InitializeConfig() (*Config, error) {
	return InitializeConfigFile("")
}

// InitializeConfigFile is InitializeConfig with an explicit config file.
// An empty path searches $HOME/.sales-report, .sales-report and the current directory.
func InitializeConfigFile(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.sales-report")
		v.AddConfigPath(".sales-report")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless named explicitly)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("input.path", "data/data_10.csv")
	v.SetDefault("input.delimiter", ",")

	v.SetDefault("chart.width", chart.DefaultBarWidth)
	v.SetDefault("chart.currency", models.DefaultCurrencySymbol)
	v.SetDefault("chart.locale", "en")
	v.SetDefault("chart.xlsx_path", "")

	v.SetDefault("report.summary_path", "")
	v.SetDefault("report.summary_format", report.FormatYAML)

	v.SetDefault("generator.output", "data/data_100.csv")
	v.SetDefault("generator.rows", 1000)
	v.SetDefault("generator.seed", 0)
	v.SetDefault("generator.min_quantity", 1)
	v.SetDefault("generator.max_quantity", 20)
	v.SetDefault("generator.start_date", "2024-06-01")
	v.SetDefault("generator.end_date", "2024-06-30")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if utf8.RuneCountInString(config.Input.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.Input.Delimiter)
	}

	if config.Chart.Width < 1 {
		return fmt.Errorf("chart.width must be positive, got: %d", config.Chart.Width)
	}

	if _, err := report.LabelsFor(config.Chart.Locale); err != nil {
		return fmt.Errorf("invalid chart.locale: %w", err)
	}

	if err := validation.IsValidOutputFormat(config.Report.SummaryFormat); err != nil {
		return fmt.Errorf("invalid report.summary_format: %w", err)
	}

	if config.Generator.Rows < 0 {
		return fmt.Errorf("generator.rows cannot be negative, got: %d", config.Generator.Rows)
	}

	if config.Generator.MinQuantity < 0 || config.Generator.MaxQuantity < config.Generator.MinQuantity {
		return fmt.Errorf("generator quantity range %d..%d is invalid",
			config.Generator.MinQuantity, config.Generator.MaxQuantity)
	}

	start, _, err := dateutils.ParseISODate(config.Generator.StartDate)
	if err != nil {
		return fmt.Errorf("generator.start_date: %w", err)
	}
	end, _, err := dateutils.ParseISODate(config.Generator.EndDate)
	if err != nil {
		return fmt.Errorf("generator.end_date: %w", err)
	}
	if !end.After(start) {
		return fmt.Errorf("generator.end_date %s must be after start_date %s",
			config.Generator.EndDate, config.Generator.StartDate)
	}

	return nil
}

// NewLogger builds the process logger for the log section. Entries go to
// stderr; an unknown level logs a warning and falls back to info.
func (c LogConfig) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(strings.ToLower(c.Level))
	if err != nil {
		logger.WithField("level", c.Level).Warn("Unknown log level, using info")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	switch strings.ToLower(c.Format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
