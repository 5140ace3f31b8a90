// Package config loads and validates showlens configuration from
// file, environment, and defaults.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the top-level configuration struct for showlens.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Mongo  MongoConfig  `mapstructure:"mongo"`
	Keys   KeysConfig   `mapstructure:"keys"`
	Fields FieldsConfig `mapstructure:"fields"`
	Chart  ChartConfig  `mapstructure:"chart"`
	Serve  ServeConfig  `mapstructure:"serve"`
}

// MongoConfig holds the record source connection settings.
type MongoConfig struct {
	URI        string `mapstructure:"uri"`
	Database   string `mapstructure:"database"`
	Collection string `mapstructure:"collection"`
	// Timeout is the server-selection timeout as a duration string.
	Timeout string `mapstructure:"timeout"`
}

// KeysConfig holds the credit-field configuration source.
type KeysConfig struct {
	File string `mapstructure:"file"`
}

// FieldsConfig names the record fields the classifier consumes.
// Datasets label the season count differently ("seasons",
// "number of seasons"), so both names are configurable.
type FieldsConfig struct {
	Year    string `mapstructure:"year"`
	Seasons string `mapstructure:"seasons"`
}

// ChartConfig holds dashboard rendering settings.
type ChartConfig struct {
	Kind string `mapstructure:"kind"`
}

// ServeConfig holds HTTP server settings for serve mode.
type ServeConfig struct {
	Addr string `mapstructure:"addr"`
}

// Validation errors.
var (
	ErrInvalidChartKind = errors.New("chart.kind must be \"bar\" or \"line\"")
	ErrEmptyField       = errors.New("field name must not be empty")
	ErrEmptyServeAddr   = errors.New("serve.addr must not be empty")
	ErrInvalidTimeout   = errors.New("mongo.timeout must be a duration")
)

// Validate checks cross-field constraints. Connection settings are
// not required here; commands that need the record source check them
// at the point of use.
func (c *Config) Validate() error {
	if c.Chart.Kind != "bar" && c.Chart.Kind != "line" {
		return fmt.Errorf("%w: got %q", ErrInvalidChartKind, c.Chart.Kind)
	}

	if c.Fields.Year == "" || c.Fields.Seasons == "" {
		return ErrEmptyField
	}

	if c.Serve.Addr == "" {
		return ErrEmptyServeAddr
	}

	_, err := c.MongoTimeout()
	if err != nil {
		return err
	}

	return nil
}

// MongoTimeout parses the configured server-selection timeout.
func (c *Config) MongoTimeout() (time.Duration, error) {
	if c.Mongo.Timeout == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(c.Mongo.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, c.Mongo.Timeout)
	}

	return d, nil
}
