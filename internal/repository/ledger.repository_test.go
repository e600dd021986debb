package repository

import (
	"context"
	"cryptodashboard/internal/domain"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func floatPointer(f float64) *float64 {
	return &f
}

func Test_transactionFromRecord(t *testing.T) {
	validRecord := func() ledgerRecord {
		return ledgerRecord{
			CoinName:        "Bitcoin",
			Symbol:          "BTC",
			AcquisitionType: "Buy",
			TokenAmount:     floatPointer(0.5),
			UsdAmount:       floatPointer(8000),
			UnitPriceRaw:    "$16,000.00",
			TransactionDate: "2023-01-15",
			Platform:        "Binance",
			Sector:          "Layer 1",
		}
	}

	t.Run("valid row converts fully", func(t *testing.T) {
		transaction, err := transactionFromRecord(validRecord(), 3)
		require.NoError(t, err)

		require.Equal(t, "Bitcoin", transaction.CoinName)
		require.Equal(t, domain.AcquisitionTypeBuy, transaction.AcquisitionType)
		require.True(t, transaction.TokenAmount.Equal(decimal.NewFromFloat(0.5)))
		require.True(t, transaction.UsdAmount.Equal(decimal.NewFromInt(8000)))
		require.Equal(t, time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC), transaction.TransactionDate)
		require.Equal(t, 3, transaction.LedgerOrder)
		require.True(t, transaction.UnitPriceAtTime().Equal(decimal.NewFromInt(16000)))
	})

	t.Run("missing coin name is rejected", func(t *testing.T) {
		record := validRecord()
		record.CoinName = "  "
		_, err := transactionFromRecord(record, 0)
		require.Error(t, err)
	})

	t.Run("unrecognized acquisition type is rejected", func(t *testing.T) {
		record := validRecord()
		record.AcquisitionType = "staking reward"
		_, err := transactionFromRecord(record, 0)
		require.Error(t, err)
	})

	t.Run("missing token amount is rejected", func(t *testing.T) {
		record := validRecord()
		record.TokenAmount = nil
		_, err := transactionFromRecord(record, 0)
		require.Error(t, err)
	})

	t.Run("negative token amount is rejected", func(t *testing.T) {
		record := validRecord()
		record.TokenAmount = floatPointer(-1)
		_, err := transactionFromRecord(record, 0)
		require.Error(t, err)
	})

	t.Run("missing usd amount defaults to zero", func(t *testing.T) {
		record := validRecord()
		record.UsdAmount = nil
		transaction, err := transactionFromRecord(record, 0)
		require.NoError(t, err)
		require.True(t, transaction.UsdAmount.IsZero())
	})

	t.Run("unparsable date keeps the row with a zero date", func(t *testing.T) {
		record := validRecord()
		record.TransactionDate = "sometime last winter"
		transaction, err := transactionFromRecord(record, 0)
		require.NoError(t, err)
		require.True(t, transaction.TransactionDate.IsZero())
	})
}

func Test_transactionsFromRecords(t *testing.T) {
	t.Run("malformed rows are skipped, order is preserved", func(t *testing.T) {
		records := []ledgerRecord{
			{CoinName: "Bitcoin", AcquisitionType: "buy", TokenAmount: floatPointer(1)},
			{CoinName: "", AcquisitionType: "buy", TokenAmount: floatPointer(1)},
			{CoinName: "Ethereum", AcquisitionType: "swap buy", TokenAmount: floatPointer(2)},
		}

		transactions, err := transactionsFromRecords(context.Background(), records)
		require.NoError(t, err)
		require.Len(t, transactions, 2)
		require.Equal(t, "Bitcoin", transactions[0].CoinName)
		require.Equal(t, 0, transactions[0].LedgerOrder)
		require.Equal(t, "Ethereum", transactions[1].CoinName)
		require.Equal(t, 1, transactions[1].LedgerOrder)
	})
}

func Test_parseLedgerDate(t *testing.T) {
	tests := []struct {
		in       string
		expected time.Time
	}{
		{"2023-01-15", time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"2023-01-15T10:30:00", time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"2023-01-15 10:30:00", time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"01/15/2023", time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"2023-01-15T10:30:00Z", time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC)},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			parsed, err := parseLedgerDate(tc.in)
			require.NoError(t, err)
			require.True(t, tc.expected.Equal(parsed))
		})
	}

	t.Run("empty and garbage dates error", func(t *testing.T) {
		_, err := parseLedgerDate("")
		require.Error(t, err)
		_, err = parseLedgerDate("last tuesday")
		require.Error(t, err)
	})
}

func Test_CsvLedgerRepository(t *testing.T) {
	t.Run("reads a ledger export", func(t *testing.T) {
		csvContent := `Coin Name,Coin status/sector,Crypto symbol,Price of token at the moment,Result of acquisition,Sum (in token),Sum (in USD),Transaction Date,Transaction platform
Bitcoin,Layer 1,BTC,"$16,000.00",Buy,0.5,8000,2023-01-15,Binance
Ethereum,Layer 1,ETH,$1500.00,Swap buy,10,15000,2023-02-01,Kraken
,,,,Buy,1,100,2023-03-01,Binance
`
		path := filepath.Join(t.TempDir(), "ledger.csv")
		require.NoError(t, os.WriteFile(path, []byte(csvContent), 0o644))

		repo := NewCsvLedgerRepository(path)
		transactions, err := repo.ListTransactions(context.Background())
		require.NoError(t, err)

		// the row with no coin name is dropped
		require.Len(t, transactions, 2)
		require.Equal(t, "Bitcoin", transactions[0].CoinName)
		require.Equal(t, domain.AcquisitionTypeSwapBuy, transactions[1].AcquisitionType)
		require.True(t, transactions[1].TokenAmount.Equal(decimal.NewFromInt(10)))
	})

	t.Run("missing file errors", func(t *testing.T) {
		repo := NewCsvLedgerRepository(filepath.Join(t.TempDir(), "nope.csv"))
		_, err := repo.ListTransactions(context.Background())
		require.Error(t, err)
	})
}
