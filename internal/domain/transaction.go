package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type AcquisitionType string

const (
	AcquisitionTypeBuy      AcquisitionType = "buy"
	AcquisitionTypeSell     AcquisitionType = "sell"
	AcquisitionTypeSwapBuy  AcquisitionType = "swap buy"
	AcquisitionTypeSwapSell AcquisitionType = "swap sell"
)

// ParseAcquisitionType matches case-insensitively. Unrecognized values return
// false; the aggregation layer skips those rows rather than erroring.
func ParseAcquisitionType(in string) (AcquisitionType, bool) {
	switch strings.ToLower(strings.TrimSpace(in)) {
	case "buy":
		return AcquisitionTypeBuy, true
	case "sell":
		return AcquisitionTypeSell, true
	case "swap buy":
		return AcquisitionTypeSwapBuy, true
	case "swap sell":
		return AcquisitionTypeSwapSell, true
	}
	return "", false
}

func (t AcquisitionType) IsInflow() bool {
	return t == AcquisitionTypeBuy || t == AcquisitionTypeSwapBuy
}

func (t AcquisitionType) IsOutflow() bool {
	return t == AcquisitionTypeSell || t == AcquisitionTypeSwapSell
}

// Transaction is a validated ledger row. Rows are read-only once fetched;
// LedgerOrder preserves the order the ledger returned them in, which is the
// tie-break when two transactions share a date.
type Transaction struct {
	CoinName        string
	Symbol          string
	AcquisitionType AcquisitionType
	TokenAmount     decimal.Decimal
	UsdAmount       decimal.Decimal
	UnitPriceRaw    string
	TransactionDate time.Time
	Platform        string
	Sector          string
	LedgerOrder     int
}

// UnitPriceAtTime parses the loosely-formatted price string recorded with the
// transaction ("$1,234.56" and similar).
func (t Transaction) UnitPriceAtTime() decimal.Decimal {
	return ParseLoosePrice(t.UnitPriceRaw)
}

// ParseLoosePrice strips every non-digit, non-decimal-point character and
// parses the rest. A string that yields no digits parses to zero.
func ParseLoosePrice(raw string) decimal.Decimal {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}
