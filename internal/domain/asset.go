package domain

import "github.com/shopspring/decimal"

// Asset mirrors the CoinCap v2 asset record. CoinCap returns every numeric
// field as a string; keep them that way on the wire and parse where needed.
type Asset struct {
	ID                string  `json:"id"`
	Rank              string  `json:"rank"`
	Symbol            string  `json:"symbol"`
	Name              string  `json:"name"`
	Supply            string  `json:"supply"`
	MaxSupply         *string `json:"maxSupply"`
	MarketCapUsd      string  `json:"marketCapUsd"`
	VolumeUsd24Hr     string  `json:"volumeUsd24Hr"`
	PriceUsd          string  `json:"priceUsd"`
	ChangePercent24Hr string  `json:"changePercent24Hr"`
	Vwap24Hr          string  `json:"vwap24Hr"`
}

func (a Asset) Price() (decimal.Decimal, error) {
	return decimal.NewFromString(a.PriceUsd)
}

type AssetHistoryPoint struct {
	PriceUsd string `json:"priceUsd"`
	Time     int64  `json:"time"`
	Date     string `json:"date"`
}
