package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/edgecomet/jtl-summary/internal/common/configtypes"
)

// Load reads the summary configuration from a YAML file.
// An empty path returns the built-in defaults.
func Load(path string, logger *zap.Logger) (*configtypes.SummaryConfig, error) {
	if path == "" {
		logger.Debug("No config file given, using defaults")
		return configtypes.Default(), nil
	}

	logger.Info("Loading configuration", zap.String("path", path))

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	logger.Info("Configuration loaded successfully",
		zap.String("log_level", cfg.Log.Level),
		zap.String("delimiter", cfg.Input.Delimiter),
		zap.Bool("metrics", cfg.Metrics.Enabled))

	return cfg, nil
}

// Parse decodes, validates and defaults a YAML document
func Parse(data []byte) (*configtypes.SummaryConfig, error) {
	var cfg configtypes.SummaryConfig
	if err := unmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// unmarshalStrict rejects fields the config types do not declare.
// An empty document decodes to the zero config.
func unmarshalStrict(data []byte, v interface{}) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	err := decoder.Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "field") && strings.Contains(errStr, "not found") {
			return fmt.Errorf("unknown configuration field (check for typos): %w", err)
		}
		return err
	}
	return nil
}
