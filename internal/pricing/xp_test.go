package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zedkhan/OSRSOrderBot_Go/internal/domain"
)

func TestXPToLevel(t *testing.T) {
	t.Run("known breakpoints", func(t *testing.T) {
		for xp, want := range map[int64]int{
			0:        1,
			82:       1,
			83:       2,
			13363:    29,
			101333:   49,
			737627:   69,
			1986068:  80,
			13034431: 99,
			20000000: 99,
		} {
			assert.Equal(t, want, XPToLevel(xp), "xp %d", xp)
		}
	})

	t.Run("monotonic and bounded", func(t *testing.T) {
		prev := 0
		for xp := int64(0); xp <= 14000000; xp += 12347 {
			lvl := XPToLevel(xp)
			assert.GreaterOrEqual(t, lvl, 1)
			assert.LessOrEqual(t, lvl, 99)
			assert.GreaterOrEqual(t, lvl, prev, "xp %d", xp)
			prev = lvl
		}
	})
}

func TestParseXP(t *testing.T) {
	t.Run("suffixes and separators", func(t *testing.T) {
		for input, want := range map[string]int64{
			"1.5m":      1500000,
			"1.5M":      1500000,
			"100k":      100000,
			"12,345":    12345,
			"1,000,000": 1000000,
			"750000":    750000,
			"0":         0,
		} {
			got, err := ParseXP(input)
			require.NoError(t, err, "input %q", input)
			assert.Equal(t, want, got, "input %q", input)
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, input := range []string{"", "abc", "1.5q", "-500"} {
			_, err := ParseXP(input)
			assert.ErrorIs(t, err, domain.ErrParse, "input %q", input)
		}
	})
}

func TestPriceByXPRange(t *testing.T) {
	entry := domain.CatalogEntry{Name: "70-90 Ranged", PricePKR: 5, PriceUSD: usd(0.0179)}

	t.Run("prices per hundred xp gained", func(t *testing.T) {
		est, err := PriceByXPRange(entry, 1000000, 1500000)
		require.NoError(t, err)
		assert.Equal(t, int64(500000), est.GainedXP)
		assert.Equal(t, 25000.0, est.TotalPKR)
		assert.Equal(t, XPToLevel(1000000), est.StartLevel)
		assert.Equal(t, XPToLevel(1500000), est.EndLevel)
		require.NotNil(t, est.TotalUSD)
		assert.InDelta(t, 89.5, *est.TotalUSD, 0.01)
	})

	t.Run("rejects equal endpoints", func(t *testing.T) {
		_, err := PriceByXPRange(entry, 500000, 500000)
		assert.ErrorIs(t, err, domain.ErrInvalidRange)
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		_, err := PriceByXPRange(entry, 2000000, 1000000)
		assert.ErrorIs(t, err, domain.ErrInvalidRange)
	})

	t.Run("rejects negative xp", func(t *testing.T) {
		_, err := PriceByXPRange(entry, -1, 1000)
		assert.ErrorIs(t, err, domain.ErrInvalidRange)
	})

	t.Run("omits USD when entry has none", func(t *testing.T) {
		est, err := PriceByXPRange(domain.CatalogEntry{Name: "1-50 Mining", PricePKR: 3}, 0, 100000)
		require.NoError(t, err)
		assert.Nil(t, est.TotalUSD)
		assert.Equal(t, 3000.0, est.TotalPKR)
	})
}
