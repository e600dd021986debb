package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_ParseAcquisitionType(t *testing.T) {
	tests := []struct {
		in       string
		expected AcquisitionType
		ok       bool
	}{
		{"buy", AcquisitionTypeBuy, true},
		{"Buy", AcquisitionTypeBuy, true},
		{" SELL ", AcquisitionTypeSell, true},
		{"Swap buy", AcquisitionTypeSwapBuy, true},
		{"swap sell", AcquisitionTypeSwapSell, true},
		{"airdrop", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			parsed, ok := ParseAcquisitionType(tc.in)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.expected, parsed)
		})
	}
}

func Test_AcquisitionTypeDirection(t *testing.T) {
	require.True(t, AcquisitionTypeBuy.IsInflow())
	require.True(t, AcquisitionTypeSwapBuy.IsInflow())
	require.False(t, AcquisitionTypeSell.IsInflow())

	require.True(t, AcquisitionTypeSell.IsOutflow())
	require.True(t, AcquisitionTypeSwapSell.IsOutflow())
	require.False(t, AcquisitionTypeBuy.IsOutflow())
}

func Test_ParseLoosePrice(t *testing.T) {
	tests := []struct {
		in       string
		expected decimal.Decimal
	}{
		{"$16,000.00", decimal.NewFromInt(16000)},
		{"1500", decimal.NewFromInt(1500)},
		{"0.000032", decimal.NewFromFloat(0.000032)},
		{"USD 42.50", decimal.NewFromFloat(42.5)},
		{"free", decimal.Zero},
		{"", decimal.Zero},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			parsed := ParseLoosePrice(tc.in)
			require.True(t, tc.expected.Equal(parsed), parsed.String())
		})
	}
}
