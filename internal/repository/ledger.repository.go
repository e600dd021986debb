package repository

import (
	"context"
	"cryptodashboard/internal/db/models/postgres/public/model"
	"cryptodashboard/internal/db/models/postgres/public/table"
	"cryptodashboard/internal/domain"
	"cryptodashboard/internal/logger"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRepository reads the user's transaction ledger. The ledger is a
// read-only collaborator - there is no write path anywhere in this service.
type LedgerRepository interface {
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

type ledgerRepositoryHandler struct {
	Db *sql.DB
}

func NewLedgerRepository(db *sql.DB) LedgerRepository {
	return ledgerRepositoryHandler{Db: db}
}

func (h ledgerRepositoryHandler) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := table.CryptoLedger.SELECT(table.CryptoLedger.AllColumns)

	rows := []model.CryptoLedger{}
	err := query.QueryContext(ctx, h.Db, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger transactions: %w", err)
	}

	records := make([]ledgerRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, ledgerRecord{
			CoinName:        strValue(row.CoinName),
			Symbol:          strValue(row.CryptoSymbol),
			AcquisitionType: strValue(row.ResultOfAcquisition),
			TokenAmount:     row.SumInToken,
			UsdAmount:       row.SumInUsd,
			UnitPriceRaw:    strValue(row.PriceOfTokenAtTheMoment),
			TransactionDate: strValue(row.TransactionDate),
			Platform:        strValue(row.TransactionPlatform),
			Sector:          strValue(row.CoinStatusSector),
		})
	}

	return transactionsFromRecords(ctx, records)
}

// ledgerRecord is the loosely-typed row shape shared by the Postgres and CSV
// ledger sources. Validation into domain.Transaction happens in one place so
// both sources reject malformed rows the same way.
type ledgerRecord struct {
	CoinName        string
	Symbol          string
	AcquisitionType string
	TokenAmount     *float64
	UsdAmount       *float64
	UnitPriceRaw    string
	TransactionDate string
	Platform        string
	Sector          string
}

// transactionsFromRecords converts raw ledger rows to typed transactions,
// preserving source order. Malformed rows are flagged and skipped rather than
// silently zeroed into the aggregation.
func transactionsFromRecords(ctx context.Context, records []ledgerRecord) ([]domain.Transaction, error) {
	log := logger.FromContext(ctx)

	out := make([]domain.Transaction, 0, len(records))
	dropped := 0
	for i, record := range records {
		tx, err := transactionFromRecord(record, len(out))
		if err != nil {
			log.Warnf("dropping malformed ledger row %d: %s", i, err.Error())
			dropped++
			continue
		}
		out = append(out, tx)
	}
	if dropped > 0 {
		log.Warnf("dropped %d of %d ledger rows", dropped, len(records))
	}

	return out, nil
}

func transactionFromRecord(record ledgerRecord, order int) (domain.Transaction, error) {
	coinName := strings.TrimSpace(record.CoinName)
	if coinName == "" {
		return domain.Transaction{}, fmt.Errorf("missing coin name")
	}

	acquisitionType, ok := domain.ParseAcquisitionType(record.AcquisitionType)
	if !ok {
		return domain.Transaction{}, fmt.Errorf("unrecognized acquisition type %q", record.AcquisitionType)
	}

	if record.TokenAmount == nil {
		return domain.Transaction{}, fmt.Errorf("missing token amount")
	}
	tokenAmount := decimal.NewFromFloat(*record.TokenAmount)
	if tokenAmount.IsNegative() {
		// amounts are stored as magnitudes; the sign comes from the
		// acquisition type
		return domain.Transaction{}, fmt.Errorf("negative token amount %s", tokenAmount.String())
	}

	usdAmount := decimal.Zero
	if record.UsdAmount != nil {
		usdAmount = decimal.NewFromFloat(*record.UsdAmount)
	}

	transactionDate, err := parseLedgerDate(record.TransactionDate)
	if err != nil {
		// keep the row; a zero date only affects fallback-price ordering
		transactionDate = time.Time{}
	}

	return domain.Transaction{
		CoinName:        coinName,
		Symbol:          strings.TrimSpace(record.Symbol),
		AcquisitionType: acquisitionType,
		TokenAmount:     tokenAmount,
		UsdAmount:       usdAmount,
		UnitPriceRaw:    record.UnitPriceRaw,
		TransactionDate: transactionDate,
		Platform:        record.Platform,
		Sector:          record.Sector,
		LedgerOrder:     order,
	}, nil
}

var ledgerDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

func parseLedgerDate(in string) (time.Time, error) {
	in = strings.TrimSpace(in)
	if in == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range ledgerDateLayouts {
		if t, err := time.Parse(layout, in); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable date %q", in)
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
