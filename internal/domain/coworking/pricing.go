package coworking

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pricing is the tiered time-billing rule: BaseRate covers the first hour in
// full (also the minimum charge for any measurable session), every started
// half-hour beyond that is charged at HalfHourRate.
type Pricing struct {
	BaseRate     decimal.Decimal
	HalfHourRate decimal.Decimal
}

func DefaultPricing() Pricing {
	return Pricing{
		BaseRate:     decimal.NewFromInt(58),
		HalfHourRate: decimal.NewFromInt(35),
	}
}

type TimeCharge struct {
	Cost    decimal.Decimal
	Minutes int64
}

// CalculateTimeCharge converts elapsed wall-clock time into the billed amount.
// Total over its inputs: a negative interval clamps to zero minutes instead of
// failing, since this is an operator-facing estimate until finalization.
func (p Pricing) CalculateTimeCharge(start, end time.Time) TimeCharge {
	elapsedMs := end.Sub(start).Milliseconds()

	var minutes int64
	if elapsedMs > 0 {
		minutes = (elapsedMs + 59_999) / 60_000
	}

	cost := decimal.Zero
	if minutes > 0 {
		if minutes <= 60 {
			cost = p.BaseRate
		} else {
			extraMinutes := minutes - 60
			halfHourBlocks := (extraMinutes + 29) / 30
			cost = p.BaseRate.Add(p.HalfHourRate.Mul(decimal.NewFromInt(halfHourBlocks)))
		}
	}

	return TimeCharge{Cost: cost, Minutes: minutes}
}

// ExtrasTotal sums consumed extras at the unit price captured when each item
// was added, not the product's current price.
func ExtrasTotal(extras []Extra) decimal.Decimal {
	total := decimal.Zero
	for _, e := range extras {
		total = total.Add(e.UnitPrice.Mul(decimal.NewFromInt(int64(e.Quantity))))
	}
	return total
}
