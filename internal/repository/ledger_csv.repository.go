package repository

import (
	"context"
	"cryptodashboard/internal/domain"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// csvLedgerRow matches the column headers of a CSV export of the hosted
// ledger table.
type csvLedgerRow struct {
	CoinName        string   `csv:"Coin Name"`
	CryptoSymbol    string   `csv:"Crypto symbol"`
	Acquisition     string   `csv:"Result of acquisition"`
	SumInToken      *float64 `csv:"Sum (in token)"`
	SumInUsd        *float64 `csv:"Sum (in USD)"`
	Price           string   `csv:"Price of token at the moment"`
	TransactionDate string   `csv:"Transaction Date"`
	Platform        string   `csv:"Transaction platform"`
	Sector          string   `csv:"Coin status/sector"`
}

type csvLedgerRepositoryHandler struct {
	Path string
}

// NewCsvLedgerRepository reads the ledger from a CSV export instead of the
// hosted database. Used for local dev and tests.
func NewCsvLedgerRepository(path string) LedgerRepository {
	return csvLedgerRepositoryHandler{Path: path}
}

func (h csvLedgerRepositoryHandler) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	f, err := os.Open(h.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger csv: %w", err)
	}
	defer f.Close()

	rows := []csvLedgerRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse ledger csv: %w", err)
	}

	records := make([]ledgerRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, ledgerRecord{
			CoinName:        row.CoinName,
			Symbol:          row.CryptoSymbol,
			AcquisitionType: row.Acquisition,
			TokenAmount:     row.SumInToken,
			UsdAmount:       row.SumInUsd,
			UnitPriceRaw:    row.Price,
			TransactionDate: row.TransactionDate,
			Platform:        row.Platform,
			Sector:          row.Sector,
		})
	}

	return transactionsFromRecords(ctx, records)
}
