package commands //nolint:testpackage // testing internal implementation.

import (
	"context"
	"errors"

	"github.com/showlens/showlens/internal/config"
	"github.com/showlens/showlens/pkg/record"
	"github.com/showlens/showlens/pkg/source"
)

// errSourceDown stands in for an unreachable record source.
var errSourceDown = errors.New("server selection timed out")

func testConfig() *config.Config {
	return &config.Config{
		Mongo: config.MongoConfig{
			URI:        "mongodb://localhost:27017",
			Database:   "media",
			Collection: "series",
			Timeout:    "5s",
		},
		Keys:   config.KeysConfig{File: "keys_to_consider.csv"},
		Fields: config.FieldsConfig{Year: "year", Seasons: "seasons"},
		Chart:  config.ChartConfig{Kind: "bar"},
		Serve:  config.ServeConfig{Addr: ":0"},
	}
}

// scenarioRecords is the canonical three-record data set: years
// 2010-2012, presence [2,1,2], new [2,0,1], credits [0,0,2].
func scenarioRecords() []record.Record {
	return []record.Record{
		{"year": 2010},
		{"year": 2010, "seasons": 3},
		{"year": 2012, "cast": []any{1, 2}},
	}
}

func testDeps(records []record.Record, creditFields []string, cfg *config.Config) Dependencies {
	return Dependencies{
		OpenSource: func(_ context.Context, _ *config.Config) (source.Source, sourceCleanup, error) {
			return &source.Memory{Records: records}, func(context.Context) {}, nil
		},
		LoadKeys: func(string) ([]string, error) {
			return creditFields, nil
		},
		LoadConfig: func(string) (*config.Config, error) {
			return cfg, nil
		},
	}
}

func failingSourceDeps(cfg *config.Config) Dependencies {
	deps := testDeps(nil, []string{"cast"}, cfg)
	deps.OpenSource = func(_ context.Context, _ *config.Config) (source.Source, sourceCleanup, error) {
		return nil, nil, errSourceDown
	}

	return deps
}
