package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceSource records where a valuation's unit price came from.
type PriceSource string

const (
	PriceSourceFeed            PriceSource = "feed"
	PriceSourceFixedOverride   PriceSource = "fixed_override"
	PriceSourceLastTransaction PriceSource = "last_transaction"
)

// ValuationEntry is the current worth of a single held coin. Only coins with
// a strictly positive net balance are ever valued.
type ValuationEntry struct {
	CoinName     string          `json:"coinName"`
	NetBalance   decimal.Decimal `json:"netBalance"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	CurrentValue decimal.Decimal `json:"currentValue"`
	PriceSource  PriceSource     `json:"priceSource"`
}

type DistributionEntry struct {
	CoinName   string          `json:"name"`
	Value      decimal.Decimal `json:"value"`
	Percentage decimal.Decimal `json:"percentage"`
}

type PortfolioSummary struct {
	TotalAllocated   decimal.Decimal `json:"totalAllocated"`
	CurrentValue     decimal.Decimal `json:"currentValue"`
	PercentageChange decimal.Decimal `json:"percentageChange"`
}

// PortfolioSnapshot is the output of one full refresh cycle. It is immutable
// once computed; the next cycle fully supersedes it.
type PortfolioSnapshot struct {
	RefreshID    uuid.UUID                 `json:"refreshID"`
	ComputedAt   time.Time                 `json:"computedAt"`
	Transactions []Transaction             `json:"transactions"`
	Valuations   map[string]ValuationEntry `json:"valuations"`
	Summary      PortfolioSummary          `json:"summary"`
	Distribution []DistributionEntry       `json:"distribution"`
}
