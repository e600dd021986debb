package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_ResolveFeedID(t *testing.T) {
	s := NewCoinMappingService()

	t.Run("known aliases map to feed ids", func(t *testing.T) {
		require.Equal(t, "near-protocol", s.ResolveFeedID("NEAR"))
		require.Equal(t, "solana", s.ResolveFeedID("Sol"))
		require.Equal(t, "vxv", s.ResolveFeedID("Vectorspace"))
		require.Equal(t, "fetch", s.ResolveFeedID("Fetch-AI"))
	})

	t.Run("unmapped names normalize to hyphenated lowercase", func(t *testing.T) {
		require.Equal(t, "bitcoin", s.ResolveFeedID("Bitcoin"))
		require.Equal(t, "shiba-inu", s.ResolveFeedID("  Shiba   Inu "))
	})
}

func Test_HasFeedListing(t *testing.T) {
	s := NewCoinMappingService()

	require.True(t, s.HasFeedListing("bitcoin"))
	require.False(t, s.HasFeedListing("grass"))
	require.False(t, s.HasFeedListing("render"))
	require.False(t, s.HasFeedListing("tars-ai"))
}

func Test_FixedOverridePrice(t *testing.T) {
	s := NewCoinMappingService()

	t.Run("overridden coins return their pinned price", func(t *testing.T) {
		price, ok := s.FixedOverridePrice("TAI")
		require.True(t, ok)
		require.True(t, price.Equal(decimal.NewFromFloat(0.38)))

		price, ok = s.FixedOverridePrice("grass")
		require.True(t, ok)
		require.True(t, price.Equal(decimal.NewFromFloat(2.88)))
	})

	t.Run("a pinned zero is still an override", func(t *testing.T) {
		price, ok := s.FixedOverridePrice("Tars-AI")
		require.True(t, ok)
		require.True(t, price.IsZero())
	})

	t.Run("unlisted coins have no override", func(t *testing.T) {
		_, ok := s.FixedOverridePrice("Bitcoin")
		require.False(t, ok)
	})
}
