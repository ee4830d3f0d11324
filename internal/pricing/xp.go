package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/zedkhan/OSRSOrderBot_Go/internal/domain"
)

// Estimate is a priced leveling XP range.
type Estimate struct {
	StartXP    int64
	EndXP      int64
	GainedXP   int64
	StartLevel int
	EndLevel   int
	// TotalPKR is (gained/100) * rate, rounded to 2 decimal places.
	TotalPKR float64
	// TotalUSD is nil when the bracket carries no USD rate.
	TotalUSD *float64
}

// XPToLevel approximates the level reached at a total XP using the
// standard experience formula. Intentionally the running-sum approximation
// rather than an exact lookup table; the power must stay floating-point to
// reproduce the reference values. Total over xp >= 0, bounded to [1, 99].
func XPToLevel(xp int64) int {
	points := 0
	for lvl := 1; lvl < 100; lvl++ {
		points += int(float64(lvl) + 300*math.Pow(2, float64(lvl)/7.0))
		if float64(xp) < float64(points)/4 {
			return lvl
		}
	}
	return 99
}

// ParseXP parses user XP text: "100k", "1.5m", "12,345" or a plain
// number. Case-insensitive; fractional plain numbers truncate to integer.
func ParseXP(text string) (int64, error) {
	v := strings.TrimSpace(strings.ReplaceAll(strings.ToLower(text), ",", ""))

	multiplier := 1.0
	switch {
	case strings.HasSuffix(v, "m"):
		multiplier = 1_000_000
		v = strings.TrimSuffix(v, "m")
	case strings.HasSuffix(v, "k"):
		multiplier = 1_000
		v = strings.TrimSuffix(v, "k")
	}

	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("%w: %q", domain.ErrParse, text)
	}

	xp := int64(n * multiplier)
	if xp < 0 {
		return 0, fmt.Errorf("%w: XP must not be negative", domain.ErrParse)
	}
	return xp, nil
}

// PriceByXPRange prices the XP gained between startXP and endXP against a
// bracket's per-100-XP rate.
func PriceByXPRange(entry domain.CatalogEntry, startXP, endXP int64) (*Estimate, error) {
	if startXP < 0 || endXP < 0 {
		return nil, fmt.Errorf("%w: XP must not be negative", domain.ErrInvalidRange)
	}
	if endXP <= startXP {
		return nil, domain.ErrInvalidRange
	}

	gained := endXP - startXP
	est := &Estimate{
		StartXP:    startXP,
		EndXP:      endXP,
		GainedXP:   gained,
		StartLevel: XPToLevel(startXP),
		EndLevel:   XPToLevel(endXP),
		TotalPKR:   round2(float64(gained) / 100 * entry.PricePKR),
	}

	if entry.HasUSD() {
		usd := round2(float64(gained) / 100 * *entry.PriceUSD)
		est.TotalUSD = &usd
	}

	return est, nil
}
