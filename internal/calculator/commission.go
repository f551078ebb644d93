package calculator

import "github.com/shopspring/decimal"

var (
	commissionRate = decimal.RequireFromString("0.3")
	insuranceShare = decimal.RequireFromString("0.5")
)

// assistancePerDay is the roadside assistance fee per rental day, in minor units.
const assistancePerDay int64 = 100

// CommissionSplit is the decomposition of the platform commission.
type CommissionSplit struct {
	Insurance   int64
	Assistance  int64
	PlatformNet int64 // negative when assistance exceeds what is left of the commission
}

// Total returns the gross commission.
func (c CommissionSplit) Total() int64 {
	return c.Insurance + c.Assistance + c.PlatformNet
}

// SplitCommission takes 30% of the pre-option price and splits it:
// half of the commission goes to insurance, assistance gets a flat
// fee per day, and the platform keeps the rest.
//
// Options are not part of baseTotal; they are credited separately by BuildLedger.
func SplitCommission(baseTotal int64, days int) CommissionSplit {
	commission := decimal.NewFromInt(baseTotal).Mul(commissionRate).IntPart()
	insurance := decimal.NewFromInt(commission).Mul(insuranceShare).IntPart()
	assistance := int64(days) * assistancePerDay

	return CommissionSplit{
		Insurance:   insurance,
		Assistance:  assistance,
		PlatformNet: commission - insurance - assistance,
	}
}
