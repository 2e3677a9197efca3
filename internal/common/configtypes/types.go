package configtypes

import (
	"fmt"
)

// Log level constants
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Log format constants
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
	LogFormatText    = "text"
)

// Delimiter names accepted by input.delimiter
const (
	DelimiterComma     = ","
	DelimiterSemicolon = ";"
	DelimiterTab       = "\t"
	DelimiterPipe      = "|"
	DelimiterAuto      = "auto"
)

// DefaultMetricsNamespace is used when metrics.namespace is empty
const DefaultMetricsNamespace = "jtlsummary"

// SummaryConfig is the root configuration of the jtl-summary tool
type SummaryConfig struct {
	Log     LogConfig     `yaml:"log"`
	Input   InputConfig   `yaml:"input"`
	Report  ReportConfig  `yaml:"report"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type LogConfig struct {
	Level   string           `yaml:"level"`
	Console ConsoleLogConfig `yaml:"console"`
	File    FileLogConfig    `yaml:"file"`
}

type ConsoleLogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Format  string `yaml:"format"`
	Level   string `yaml:"level,omitempty"`
}

type FileLogConfig struct {
	Enabled  bool           `yaml:"enabled"`
	Path     string         `yaml:"path"`
	Format   string         `yaml:"format"`
	Level    string         `yaml:"level,omitempty"`
	Rotation RotationConfig `yaml:"rotation"`
}

type RotationConfig struct {
	MaxSize    int  `yaml:"max_size"`
	MaxAge     int  `yaml:"max_age"`
	MaxBackups int  `yaml:"max_backups"`
	Compress   bool `yaml:"compress"`
}

// InputConfig controls how the sample log is parsed
type InputConfig struct {
	Delimiter string `yaml:"delimiter"` // ",", ";", "\t", "|" or "auto"
}

// ReportConfig controls report rendering
type ReportConfig struct {
	PrintTable *bool `yaml:"print_table,omitempty"` // Print summary table to stdout (default: true)
}

// ShouldPrintTable reports whether the console table is enabled
func (r ReportConfig) ShouldPrintTable() bool {
	return r.PrintTable == nil || *r.PrintTable
}

type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
	Textfile  string `yaml:"textfile"` // Prometheus text format output path
}

// Default returns the configuration used when no config file is given
func Default() *SummaryConfig {
	cfg := &SummaryConfig{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills zero values with defaults
func (c *SummaryConfig) ApplyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = LogLevelInfo
	}

	// If both outputs are disabled (zero values), enable console by default
	if !c.Log.Console.Enabled && !c.Log.File.Enabled {
		c.Log.Console.Enabled = true
	}

	if c.Log.Console.Format == "" {
		c.Log.Console.Format = LogFormatConsole
	}
	if c.Log.File.Format == "" {
		c.Log.File.Format = LogFormatText
	}

	if c.Input.Delimiter == "" {
		c.Input.Delimiter = DelimiterComma
	}

	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultMetricsNamespace
	}
}

// Validate validates the summary configuration
func (c *SummaryConfig) Validate() error {
	if c == nil {
		return nil
	}

	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	switch c.Input.Delimiter {
	case "", DelimiterComma, DelimiterSemicolon, DelimiterTab, DelimiterPipe, DelimiterAuto:
	default:
		return fmt.Errorf("input.delimiter must be one of ',', ';', '\\t', '|', 'auto', got %q", c.Input.Delimiter)
	}

	if c.Metrics.Enabled && c.Metrics.Textfile == "" {
		return fmt.Errorf("metrics.textfile must be specified when metrics are enabled")
	}

	return nil
}

// Validate checks levels and formats of every output
func (l LogConfig) Validate() error {
	if err := validateLevel("level", l.Level); err != nil {
		return err
	}
	if err := validateLevel("console.level", l.Console.Level); err != nil {
		return err
	}
	if err := validateLevel("file.level", l.File.Level); err != nil {
		return err
	}
	if err := validateFormat("console.format", l.Console.Format); err != nil {
		return err
	}
	if err := validateFormat("file.format", l.File.Format); err != nil {
		return err
	}
	if l.File.Enabled && l.File.Path == "" {
		return fmt.Errorf("file.path must be specified when file logging is enabled")
	}
	if l.File.Rotation.MaxSize < 0 || l.File.Rotation.MaxAge < 0 || l.File.Rotation.MaxBackups < 0 {
		return fmt.Errorf("file.rotation values must be >= 0")
	}
	return nil
}

func validateLevel(field, level string) error {
	switch level {
	case "", LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return nil
	}
	return fmt.Errorf("%s must be one of debug, info, warn, error, got %q", field, level)
}

func validateFormat(field, format string) error {
	switch format {
	case "", LogFormatJSON, LogFormatConsole, LogFormatText:
		return nil
	}
	return fmt.Errorf("%s must be one of json, console, text, got %q", field, format)
}
