package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/txdash/transactions-dashboard/internal/bootstrap"
	"github.com/txdash/transactions-dashboard/internal/config"
	"github.com/txdash/transactions-dashboard/internal/models"
	"github.com/txdash/transactions-dashboard/internal/store"
)

// Seed/import process: the only writer of the transaction collection. Loads
// records from a JSON file, or generates a sample set when no file is given.
func main() {
	file := flag.String("file", "", "JSON file with an array of transactions")
	count := flag.Int("count", 60, "number of sample transactions to generate when no file is given")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	var txs []models.Transaction
	if *file != "" {
		txs, err = loadTransactions(*file)
		exitOnError("failed to load seed file", err, bs.Log)
	} else {
		txs = sampleTransactions(*count)
	}

	for i := range txs {
		if txs[i].TransactionID == "" {
			txs[i].TransactionID = uuid.NewString()
		}
	}

	tstore := store.NewTransactionStore(bs.Firestore)
	ctx := context.Background()
	err = tstore.UpsertBatch(ctx, txs)
	exitOnError("seed write failed", err, bs.Log)

	bs.Log.Info("seeded transactions", "count", len(txs))
}

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func loadTransactions(path string) ([]models.Transaction, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var txs []models.Transaction
	if err := json.Unmarshal(b, &txs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return txs, nil
}

var sampleTitles = []string{
	"Desk lamp", "Monitor", "Keyboard", "Office chair", "Bookshelf",
	"Headphones", "Webcam", "Standing desk", "Notebook", "Coffee grinder",
}

var sampleCategories = []string{"Home", "Office", "Electronics", "Kitchen", ""}

func sampleTransactions(n int) []models.Transaction {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	txs := make([]models.Transaction, 0, n)
	for i := 0; i < n; i++ {
		title := sampleTitles[rng.Intn(len(sampleTitles))]
		price := float64(rng.Intn(1200)) + rng.Float64()
		sold := rng.Intn(2) == 0
		var saleAmount float64
		if sold {
			saleAmount = price * (0.5 + rng.Float64()/2)
		}
		month := time.Month(rng.Intn(12) + 1)
		day := rng.Intn(28) + 1

		txs = append(txs, models.Transaction{
			Title:       title,
			Description: fmt.Sprintf("%s, sample record %d", title, i),
			Price:       price,
			Sold:        sold,
			SaleAmount:  saleAmount,
			Category:    sampleCategories[rng.Intn(len(sampleCategories))],
			Date:        time.Date(2024, month, day, 0, 0, 0, 0, time.UTC),
		})
	}
	return txs
}
