// Package vat derives the payable VAT total from the reported
// Kennziffer figures.
package vat

import "github.com/shopspring/decimal"

var (
	rateStandard = decimal.RequireFromString("0.19")
	rateReduced  = decimal.RequireFromString("0.07")
)

// Calculate returns kz81*0.19 + kz86*0.07 + kz89 - kz61.
//
// Kz43 is informational and not part of the formula. The result is exact;
// rounding to two decimal places happens only when the figure is serialized.
func Calculate(kz81, kz86, kz89, kz61 decimal.Decimal) decimal.Decimal {
	return kz81.Mul(rateStandard).
		Add(kz86.Mul(rateReduced)).
		Add(kz89).
		Sub(kz61)
}
