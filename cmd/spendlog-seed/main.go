// spendlog-seed fills the configured store with generated sample expenses,
// useful for trying out the reports without typing entries by hand.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"spendlog/internal/cli"
	"spendlog/internal/core"
	applog "spendlog/internal/log"
)

var categories = []string{
	"groceries",
	"transport",
	"dining",
	"utilities",
	"entertainment",
	"health",
}

func main() {
	count := flag.Int("n", 25, "number of expenses to generate")
	flag.Parse()

	cli.LoadEnvFile()
	logger := cli.SetupLogger().WithComponent(applog.ComponentSeed)
	cfg := cli.LoadAndValidateConfig(logger)
	store := cli.OpenStore(logger, cfg)
	defer store.Close()

	ctx := context.Background()
	records, err := store.Load(ctx)
	if err != nil {
		logger.Error("Failed to load existing expenses", "error", err)
		os.Exit(1)
	}

	now := time.Now()
	for i := 0; i < *count; i++ {
		date := gofakeit.DateRange(now.AddDate(0, -6, 0), now).Format(core.DateLayout)
		entry, err := core.NewExpense(
			core.NextID(records),
			date,
			categories[rand.Intn(len(categories))],
			gofakeit.Sentence(4),
			gofakeit.Price(1, 250),
		)
		if err != nil {
			logger.Error("Failed to build expense", "error", err)
			os.Exit(1)
		}
		records = append(records, entry)
	}

	if err := store.Save(ctx, records); err != nil {
		logger.Error("Failed to save generated expenses", "error", err)
		os.Exit(1)
	}

	logger.Info("Seeded expenses", "count", *count, "backend", cfg.DataBackend)
	fmt.Printf("Generated %d expenses (%d total on record).\n", *count, len(records))
}
