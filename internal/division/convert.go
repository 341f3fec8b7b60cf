package division

import (
	"fmt"

	"github.com/shopspring/decimal"

	"inheritance-engine/internal/model"
)

// percentagePlaces is the internal precision of division percentages.
const percentagePlaces = 5

var (
	hundred = decimal.NewFromInt(100)

	// PercentageEpsilon is the tolerance, in percentage points, on a
	// percentage division summing to 100.
	PercentageEpsilon = decimal.RequireFromString("0.001")
)

// ToAmounts converts a percentage division into yen. Every heir except the
// last in heir-set order is rounded with the given policy; the last takes
// whatever remains so the amounts always sum to totalAmount.
func ToAmounts(hs []model.Heir, totalAmount int64, percentages map[string]decimal.Decimal, policy model.RoundingPolicy) (map[string]int64, error) {
	if !policy.Valid() {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidRoundingPolicy, policy)
	}
	if err := checkKnown(hs, percentages); err != nil {
		return nil, err
	}

	normalized := make(map[string]decimal.Decimal, len(hs))
	sum := decimal.Zero
	for _, h := range hs {
		pct := percentages[h.ID].Round(percentagePlaces)
		if pct.IsNegative() {
			return nil, fmt.Errorf("%w: percentage for %s is negative", model.ErrDivisionMismatch, h.ID)
		}
		normalized[h.ID] = pct
		sum = sum.Add(pct)
	}

	if sum.Sub(hundred).Abs().GreaterThan(PercentageEpsilon) {
		return nil, &model.DivisionMismatchError{Field: "percentages", Expected: hundred, Actual: sum}
	}

	total := decimal.NewFromInt(totalAmount)
	amounts := make(map[string]int64, len(hs))
	var assigned int64

	last := len(hs) - 1
	for _, h := range hs[:last] {
		amount := applyRounding(total.Mul(normalized[h.ID]).Div(hundred), policy)
		// an entry larger than what is left would also overflow the int64 tally
		if amount.GreaterThan(decimal.NewFromInt(totalAmount - assigned)) {
			return nil, &model.DivisionMismatchError{
				Field:    "amounts",
				Expected: total,
				Actual:   decimal.NewFromInt(assigned).Add(amount),
			}
		}
		amounts[h.ID] = amount.IntPart()
		assigned += amounts[h.ID]
	}

	amounts[hs[last].ID] = totalAmount - assigned

	return amounts, nil
}

// ToPercentages projects amounts back onto percentages of totalAmount.
func ToPercentages(hs []model.Heir, amounts map[string]int64, totalAmount int64) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(hs))
	for _, h := range hs {
		out[h.ID] = percentageOf(amounts[h.ID], totalAmount)
	}
	return out
}

func percentageOf(amount, totalAmount int64) decimal.Decimal {
	if totalAmount == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(amount).Mul(hundred).DivRound(decimal.NewFromInt(totalAmount), percentagePlaces)
}

func applyRounding(d decimal.Decimal, policy model.RoundingPolicy) decimal.Decimal {
	switch policy {
	case model.RoundingFloor:
		return d.Floor()
	case model.RoundingCeil:
		return d.Ceil()
	default:
		return d.Round(0)
	}
}

func checkKnown[V any](hs []model.Heir, entries map[string]V) error {
	known := make(map[string]struct{}, len(hs))
	for _, h := range hs {
		known[h.ID] = struct{}{}
	}
	for id := range entries {
		if _, ok := known[id]; !ok {
			return fmt.Errorf("%w: %q", model.ErrUnknownHeir, id)
		}
	}
	return nil
}
