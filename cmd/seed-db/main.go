package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"os/signal"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/mofer-pos/db"
	"github.com/xenking/mofer-pos/internal/seed"
	"github.com/xenking/mofer-pos/internal/storage/postgres"
)

type options struct {
	databaseURL  string
	catalogFile  string
	apiKey       string
	apiKeyPepper string
	concurrency  int
}

func main() {
	var opts options
	flag.StringVar(&opts.databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&opts.catalogFile, "catalog", "", "path to a catalog YAML file, optionally gzipped (default: embedded demo catalog)")
	flag.StringVar(&opts.apiKey, "api-key", "", "API key to seed (or POS_SEED_API_KEY env)")
	flag.StringVar(&opts.apiKeyPepper, "api-key-pepper", "", "HMAC pepper for API key hashing (or POS_API_KEY_PEPPER env)")
	flag.IntVar(&opts.concurrency, "concurrency", 4, "locations seeded in parallel")
	flag.Parse()

	lg, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = lg.Sync() }()

	if opts.databaseURL == "" {
		opts.databaseURL = os.Getenv("DATABASE_URL")
	}
	if opts.databaseURL == "" {
		lg.Fatal("Database URL is required: set --database-url or DATABASE_URL")
	}
	if opts.apiKey == "" {
		opts.apiKey = os.Getenv("POS_SEED_API_KEY")
	}
	if opts.apiKeyPepper == "" {
		opts.apiKeyPepper = os.Getenv("POS_API_KEY_PEPPER")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	ctx, cancelDeadline := context.WithTimeout(ctx, seed.Deadline)
	defer cancelDeadline()
	ctx = zctx.Base(ctx, lg)

	if err := run(ctx, opts); err != nil {
		lg.Fatal("Seed failed", zap.Error(err))
	}
	lg.Info("Seed completed")
}

func run(ctx context.Context, opts options) error {
	lg := zctx.From(ctx)

	c, err := loadCatalog(opts.catalogFile)
	if err != nil {
		return err
	}

	lg.Info("Connecting to database")
	pool, err := postgres.NewPool(ctx, opts.databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	lg.Info("Running migrations")
	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	store := postgres.NewSeedRepository(pool)
	if err := seed.NewSeeder(store, opts.concurrency).Apply(ctx, c); err != nil {
		return errors.Wrap(err, "seed catalog")
	}

	if opts.apiKey == "" {
		lg.Warn("No API key given, skipping key seeding")
		return nil
	}
	if err := seed.SeedAPIKey(ctx, store, opts.apiKey, []byte(opts.apiKeyPepper)); err != nil {
		return errors.Wrap(err, "seed api key")
	}
	return nil
}

func loadCatalog(path string) (*seed.Catalog, error) {
	var r io.Reader = bytes.NewReader(db.DemoCatalog)
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open catalog")
		}
		defer func() { _ = f.Close() }()
		r = f
	}
	c, err := seed.Parse(r)
	if err != nil {
		return nil, errors.Wrapf(err, "load catalog %q", path)
	}
	return c, nil
}
