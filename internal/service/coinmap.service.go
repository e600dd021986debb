package service

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// CoinMappingService is the seam between the ledger's free-text coin names
// and the price feed's asset catalog. The two vocabularies drift
// independently, so every known mismatch lives in these tables - never in
// conditionals inside the valuation logic.
type CoinMappingService struct {
	feedIDOverrides map[string]string
	unlistedFeedIDs map[string]struct{}
	fixedPrices     map[string]decimal.Decimal
}

func NewCoinMappingService() *CoinMappingService {
	return &CoinMappingService{
		feedIDOverrides: map[string]string{
			"near":        "near-protocol",
			"sol":         "solana",
			"tai":         "tether", // the feed has no TAI; remapped but always fixed-priced
			"vectorspace": "vxv",
			"fetch-ai":    "fetch",
		},
		unlistedFeedIDs: map[string]struct{}{
			"grass":   {},
			"render":  {},
			"tars-ai": {},
		},
		fixedPrices: map[string]decimal.Decimal{
			"tai":     decimal.NewFromFloat(0.38),
			"grass":   decimal.NewFromFloat(2.88),
			"render":  decimal.NewFromFloat(8.51),
			"tars-ai": decimal.Zero,
		},
	}
}

var whitespaceRegex = regexp.MustCompile(`\s+`)

func normalizeCoinName(coinName string) string {
	return whitespaceRegex.ReplaceAllString(strings.ToLower(strings.TrimSpace(coinName)), "-")
}

// ResolveFeedID translates a ledger coin name into the feed's asset ID.
// Unmapped names pass through normalized (lowercased, hyphenated).
func (s *CoinMappingService) ResolveFeedID(coinName string) string {
	normalized := normalizeCoinName(coinName)
	if mapped, ok := s.feedIDOverrides[normalized]; ok {
		return mapped
	}
	return normalized
}

// HasFeedListing reports whether the feed should be queried for the asset at
// all. Unlisted assets skip the network call and go straight to fallback
// pricing.
func (s *CoinMappingService) HasFeedListing(feedID string) bool {
	_, unlisted := s.unlistedFeedIDs[feedID]
	return !unlisted
}

// FixedOverridePrice returns the hardcoded unit price for coins whose correct
// valuation cannot be sourced from the feed. It takes precedence over every
// other price source.
func (s *CoinMappingService) FixedOverridePrice(coinName string) (decimal.Decimal, bool) {
	price, ok := s.fixedPrices[normalizeCoinName(coinName)]
	return price, ok
}
