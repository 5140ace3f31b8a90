// Package commands implements CLI command handlers for showlens.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/showlens/showlens/internal/config"
	"github.com/showlens/showlens/pkg/keys"
	"github.com/showlens/showlens/pkg/record"
	"github.com/showlens/showlens/pkg/series"
	"github.com/showlens/showlens/pkg/source"
)

// ErrMongoNotConfigured is returned when a command needs the record
// source but mongo.uri, mongo.database, or mongo.collection is unset.
var ErrMongoNotConfigured = errors.New(
	"record source not configured. Set mongo.uri, mongo.database and mongo.collection\n" +
		"in .showlens.yaml or via SHOWLENS_MONGO_* environment variables",
)

// sourceCleanup releases a record source after use.
type sourceCleanup func(ctx context.Context)

// openSourceFunc opens the configured record source.
type openSourceFunc func(ctx context.Context, cfg *config.Config) (source.Source, sourceCleanup, error)

// loadKeysFunc loads the ordered credit-field names.
type loadKeysFunc func(path string) ([]string, error)

// loadConfigFunc loads the effective configuration.
type loadConfigFunc func(path string) (*config.Config, error)

// Dependencies are the external collaborators of every command,
// injectable for tests.
type Dependencies struct {
	OpenSource openSourceFunc
	LoadKeys   loadKeysFunc
	LoadConfig loadConfigFunc
}

func defaultDependencies() Dependencies {
	return Dependencies{
		OpenSource: openMongoSource,
		LoadKeys:   keys.Load,
		LoadConfig: config.LoadConfig,
	}
}

func openMongoSource(ctx context.Context, cfg *config.Config) (source.Source, sourceCleanup, error) {
	if cfg.Mongo.URI == "" || cfg.Mongo.Database == "" || cfg.Mongo.Collection == "" {
		return nil, nil, ErrMongoNotConfigured
	}

	timeout, err := cfg.MongoTimeout()
	if err != nil {
		return nil, nil, err
	}

	src, err := source.OpenMongo(ctx, source.MongoConfig{
		URI:        cfg.Mongo.URI,
		Database:   cfg.Mongo.Database,
		Collection: cfg.Mongo.Collection,
		Timeout:    timeout,
	})
	if err != nil {
		return nil, nil, err
	}

	cleanup := func(ctx context.Context) {
		_ = src.Close(ctx)
	}

	return src, cleanup, nil
}

// computeFrame runs the whole pipeline once: fetch all records, load
// the credit-field list, classify and aggregate. It also reports the
// number of records fetched. Any collaborator failure aborts the
// computation; there is no partial frame.
func computeFrame(ctx context.Context, cfg *config.Config, deps Dependencies) (series.Frame, int, error) {
	creditFields, err := deps.LoadKeys(cfg.Keys.File)
	if err != nil {
		return series.Frame{}, 0, fmt.Errorf("load credit fields: %w", err)
	}

	src, cleanup, err := deps.OpenSource(ctx, cfg)
	if err != nil {
		return series.Frame{}, 0, err
	}
	defer cleanup(ctx)

	records, err := src.FetchAll(ctx)
	if err != nil {
		return series.Frame{}, 0, fmt.Errorf("fetch records: %w", err)
	}

	classifier := record.Classifier{
		YearField:    cfg.Fields.Year,
		SeasonsField: cfg.Fields.Seasons,
	}

	return series.Compute(records, classifier, creditFields), len(records), nil
}

func progressf(silent bool, writer io.Writer, format string, args ...any) {
	if silent {
		return
	}

	_, _ = fmt.Fprintf(writer, "progress: "+format+"\n", args...)
}
