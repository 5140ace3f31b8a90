package config //nolint:testpackage // testing internal implementation.

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfigFile(t *testing.T, content map[string]any) string {
	t.Helper()

	data, err := yaml.Marshal(content)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), ".showlens.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, map[string]any{})

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, DefaultKeysFile, cfg.Keys.File)
	require.Equal(t, DefaultYearField, cfg.Fields.Year)
	require.Equal(t, DefaultSeasonsField, cfg.Fields.Seasons)
	require.Equal(t, DefaultChartKind, cfg.Chart.Kind)
	require.Equal(t, DefaultServeAddr, cfg.Serve.Addr)
	require.Equal(t, DefaultMongoTimeout, cfg.Mongo.Timeout)
}

func TestLoadConfig_FileOverrides(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, map[string]any{
		"mongo": map[string]any{
			"uri":        "mongodb://localhost:27017",
			"database":   "media",
			"collection": "series",
			"timeout":    "2s",
		},
		"fields": map[string]any{
			"seasons": "number of seasons",
		},
		"chart": map[string]any{"kind": "line"},
	})

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	require.Equal(t, "media", cfg.Mongo.Database)
	require.Equal(t, "series", cfg.Mongo.Collection)
	require.Equal(t, "number of seasons", cfg.Fields.Seasons)
	require.Equal(t, DefaultYearField, cfg.Fields.Year, "unset keys keep their defaults")
	require.Equal(t, "line", cfg.Chart.Kind)

	timeout, err := cfg.MongoTimeout()
	require.NoError(t, err)
	require.Equal(t, 2*time.Second, timeout)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SHOWLENS_CHART_KIND", "line")
	t.Setenv("SHOWLENS_MONGO_DATABASE", "fromenv")

	path := writeConfigFile(t, map[string]any{})

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "line", cfg.Chart.Kind)
	require.Equal(t, "fromenv", cfg.Mongo.Database)
}

func TestLoadConfig_InvalidChartKind(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, map[string]any{
		"chart": map[string]any{"kind": "pie"},
	})

	_, err := LoadConfig(path)
	require.ErrorIs(t, err, ErrInvalidChartKind)
}

func TestLoadConfig_InvalidTimeout(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, map[string]any{
		"mongo": map[string]any{"timeout": "soon"},
	})

	_, err := LoadConfig(path)
	require.ErrorIs(t, err, ErrInvalidTimeout)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".showlens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mongo: [unclosed"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestValidate_EmptyFieldNames(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Fields: FieldsConfig{Year: "", Seasons: "seasons"},
		Chart:  ChartConfig{Kind: "bar"},
		Serve:  ServeConfig{Addr: ":8080"},
	}

	require.ErrorIs(t, cfg.Validate(), ErrEmptyField)
}

func TestValidate_EmptyServeAddr(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Fields: FieldsConfig{Year: "year", Seasons: "seasons"},
		Chart:  ChartConfig{Kind: "bar"},
	}

	require.ErrorIs(t, cfg.Validate(), ErrEmptyServeAddr)
}
