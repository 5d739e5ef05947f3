package main

import (
	"context"
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/pageza/foodfight/backend/internal/database"
	"github.com/pageza/foodfight/backend/internal/dataset"
)

func main() {
	// Parse command line flags
	from := flag.String("from", "data/recipe_database.json", "Dataset to import: a JSON file path or s3://bucket/key")
	dsn := flag.String("dsn", os.Getenv("DATABASE_URL"), "Target database: sqlite://path or postgres://...")
	batch := flag.Int("batch", database.DefaultBatchSize, "Rows per insert batch")
	flag.Parse()

	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if *batch < 1 {
		zl.Fatal("batch size must be positive", zap.Int("batch", *batch))
	}
	if *dsn == "" {
		zl.Fatal("no target database, set -dsn or DATABASE_URL")
	}
	if !database.IsDSN(*dsn) {
		zl.Fatal("target must be a sqlite:// or postgres:// DSN", zap.String("dsn", database.Redact(*dsn)))
	}

	ctx := context.Background()
	src, err := dataset.Open(ctx, *from, os.Getenv("AWS_REGION"))
	if err != nil {
		zl.Fatal("failed to open dataset", zap.Error(err))
	}
	raws, skipped, err := src.Load(ctx)
	if err != nil {
		zl.Fatal("failed to read dataset", zap.String("source", src.String()), zap.Error(err))
	}

	db, err := database.Open(*dsn)
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := database.ImportRecipes(db, raws, *batch); err != nil {
		zl.Fatal("import failed", zap.Error(err))
	}

	zl.Info("import complete",
		zap.String("source", src.String()),
		zap.String("target", database.Redact(*dsn)),
		zap.Int("recipes", len(raws)),
		zap.Int("skipped", skipped),
	)
}
