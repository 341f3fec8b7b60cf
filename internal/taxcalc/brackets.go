package taxcalc

import "math/big"

// Bracket is one row of the inheritance tax quick-reference table
// (相続税の速算表). Tax on an amount inside the row is
// amount × RatePercent / 100 − Deduction.
type Bracket struct {
	MinAmount   int64 `json:"min_amount"`
	MaxAmount   int64 `json:"max_amount,omitempty"` // 0 means no ceiling
	RatePercent int64 `json:"tax_rate_percent"`
	Deduction   int64 `json:"deduction"`
}

// Brackets is the national table in force for deaths on or after 2015-01-01.
var Brackets = []Bracket{
	{MinAmount: 0, MaxAmount: 10_000_000, RatePercent: 10, Deduction: 0},
	{MinAmount: 10_000_001, MaxAmount: 30_000_000, RatePercent: 15, Deduction: 500_000},
	{MinAmount: 30_000_001, MaxAmount: 50_000_000, RatePercent: 20, Deduction: 2_000_000},
	{MinAmount: 50_000_001, MaxAmount: 100_000_000, RatePercent: 30, Deduction: 7_000_000},
	{MinAmount: 100_000_001, MaxAmount: 200_000_000, RatePercent: 40, Deduction: 17_000_000},
	{MinAmount: 200_000_001, MaxAmount: 300_000_000, RatePercent: 45, Deduction: 27_000_000},
	{MinAmount: 300_000_001, MaxAmount: 600_000_000, RatePercent: 50, Deduction: 42_000_000},
	{MinAmount: 600_000_001, RatePercent: 55, Deduction: 72_000_000},
}

// TaxYear labels the table for the tax-table endpoint.
const TaxYear = "2015"

func (b Bracket) contains(amount int64) bool {
	return b.MaxAmount == 0 || amount <= b.MaxAmount
}

// TaxOnAmount applies the bracket table to a statutory share amount.
// Non-positive amounts carry no tax. The result is always below amount, so it
// fits in int64 for every input.
func TaxOnAmount(amount int64) (int64, Bracket) {
	if amount <= 0 {
		return 0, Brackets[0]
	}
	b := Brackets[len(Brackets)-1]
	for _, candidate := range Brackets {
		if candidate.contains(amount) {
			b = candidate
			break
		}
	}
	return b.apply(amount), b
}

// apply computes amount × rate / 100 − deduction in big.Int so the
// intermediate product cannot overflow.
func (b Bracket) apply(amount int64) int64 {
	n := new(big.Int).Mul(big.NewInt(amount), big.NewInt(b.RatePercent))
	n.Quo(n, big.NewInt(100))
	return n.Int64() - b.Deduction
}
