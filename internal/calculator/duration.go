// Package calculator holds the pure pricing rules of a rental: tiered
// duration pricing, option pricing, the commission split and the ledger.
//
// All amounts are int64 minor units. Rates are exact decimals and every
// fractional result is truncated toward zero.
package calculator

import "github.com/shopspring/decimal"

// durationTier applies multiplier to every day whose 1-based index is at
// least fromDay, until the next tier starts.
type durationTier struct {
	fromDay    int
	multiplier decimal.Decimal
}

// durationTiers must stay sorted by fromDay.
var durationTiers = []durationTier{
	{fromDay: 1, multiplier: decimal.NewFromInt(1)},
	{fromDay: 2, multiplier: decimal.RequireFromString("0.9")},
	{fromDay: 5, multiplier: decimal.RequireFromString("0.7")},
	{fromDay: 11, multiplier: decimal.RequireFromString("0.5")},
}

// dayMultiplier returns the discount multiplier for the day-th day of a rental.
func dayMultiplier(day int) decimal.Decimal {
	m := durationTiers[0].multiplier
	for _, t := range durationTiers {
		if day < t.fromDay {
			break
		}
		m = t.multiplier
	}
	return m
}

// PriceForDuration computes the time-based price of a rental with degressive
// per-day discounts.
//
// The multiplier depends on the index of each day, not on the total length:
//
//	day 1      1.0
//	days 2-4   0.9
//	days 5-10  0.7
//	day 11+    0.5
//
// Each day's price is truncated on its own before summing, so the result can
// be slightly lower than truncating the discounted total once.
func PriceForDuration(days int, dailyRate int64) int64 {
	rate := decimal.NewFromInt(dailyRate)

	var price int64
	for day := 1; day <= days; day++ {
		price += rate.Mul(dayMultiplier(day)).IntPart()
	}
	return price
}
