// Package division reallocates the aggregate inheritance tax across an actual
// division of the estate.
//
// Rounding drift is absorbed by the last heir in heir-set order, both when
// percentages are converted to amounts and when tax is apportioned. Changing
// the order of the heir set changes which heir absorbs it.
package division

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"inheritance-engine/internal/model"
)

// SurchargeRate is the two-fold addition applied to tax attributed to heirs
// outside the spouse, child and parent set.
var SurchargeRate = decimal.RequireFromString("0.2")

// maxTotalTax keeps Σ final_tax_amount, which is at most 1.2 × totalTax,
// inside int64.
const maxTotalTax = math.MaxInt64 / 6 * 5

// Reallocate distributes totalTax over the actual division in proportion to
// each heir's acquired amount. Σ tax_amount equals totalTax and
// Σ inheritance_amount equals totalAmount exactly; the result's
// TotalTaxAmount is Σ final_tax_amount, surcharges included.
func Reallocate(hs []model.Heir, totalTax, totalAmount int64, in model.DivisionInput) (*model.DivisionResult, error) {
	if totalAmount <= 0 {
		return nil, fmt.Errorf("%w: total amount must be positive, got %d", model.ErrDivisionMismatch, totalAmount)
	}
	if totalTax < 0 {
		return nil, fmt.Errorf("%w: total tax amount must not be negative, got %d", model.ErrInvalidAmount, totalTax)
	}
	if totalTax > maxTotalTax {
		return nil, fmt.Errorf("%w: total tax amount %d exceeds %d", model.ErrInvalidAmount, totalTax, int64(maxTotalTax))
	}
	if err := checkUnique(hs); err != nil {
		return nil, err
	}

	amounts, err := resolveAmounts(hs, totalAmount, in)
	if err != nil {
		return nil, err
	}

	percentages := ToPercentages(hs, amounts, totalAmount)
	result := &model.DivisionResult{
		TotalAmount:        totalAmount,
		AllocatedTaxAmount: totalTax,
		HeirDetails:        make([]model.HeirDivisionDetail, 0, len(hs)),
	}

	var allocated int64
	last := len(hs) - 1
	for i, h := range hs {
		amount := amounts[h.ID]

		tax := totalTax - allocated
		if i < last {
			tax = proportionalTax(totalTax, amount, totalAmount)
			allocated += tax
		}

		var surcharge int64
		if h.TwoFoldAddition {
			surcharge = Surcharge(tax)
		}

		result.HeirDetails = append(result.HeirDetails, model.HeirDivisionDetail{
			HeirID:                   h.ID,
			HeirName:                 h.Name,
			Relationship:             h.Relationship,
			Type:                     h.Type,
			TwoFoldAddition:          h.TwoFoldAddition,
			InheritanceAmount:        amount,
			Percentage:               percentages[h.ID],
			TaxAmount:                tax,
			SurchargeDeductionAmount: surcharge,
			FinalTaxAmount:           tax + surcharge,
		})
		result.TotalTaxAmount += tax + surcharge
	}

	return result, nil
}

// Surcharge returns the two-fold addition on tax, truncated to whole yen.
func Surcharge(tax int64) int64 {
	return decimal.NewFromInt(tax).Mul(SurchargeRate).Floor().IntPart()
}

// proportionalTax is floor(totalTax × amount / totalAmount) without overflow.
func proportionalTax(totalTax, amount, totalAmount int64) int64 {
	q, _ := decimal.NewFromInt(totalTax).Mul(decimal.NewFromInt(amount)).QuoRem(decimal.NewFromInt(totalAmount), 0)
	return q.IntPart()
}

func resolveAmounts(hs []model.Heir, totalAmount int64, in model.DivisionInput) (map[string]int64, error) {
	switch in.Mode {
	case model.DivisionModePercentage:
		return ToAmounts(hs, totalAmount, in.Percentages, in.Rounding)
	case model.DivisionModeAmount:
		return checkAmounts(hs, totalAmount, in.Amounts)
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidDivisionMode, in.Mode)
	}
}

func checkAmounts(hs []model.Heir, totalAmount int64, amounts map[string]int64) (map[string]int64, error) {
	if err := checkKnown(hs, amounts); err != nil {
		return nil, err
	}

	// summed in decimal so oversized amounts cannot wrap into a match
	sum := decimal.Zero
	for _, h := range hs {
		a := amounts[h.ID]
		if a < 0 {
			return nil, fmt.Errorf("%w: amount for %s is negative", model.ErrDivisionMismatch, h.ID)
		}
		sum = sum.Add(decimal.NewFromInt(a))
	}

	total := decimal.NewFromInt(totalAmount)
	if !sum.Equal(total) {
		return nil, &model.DivisionMismatchError{
			Field:    "amounts",
			Expected: total,
			Actual:   sum,
		}
	}
	return amounts, nil
}

func checkUnique(hs []model.Heir) error {
	seen := make(map[string]struct{}, len(hs))
	for _, h := range hs {
		if _, dup := seen[h.ID]; dup {
			return fmt.Errorf("%w: duplicate heir id %q", model.ErrInvalidStructure, h.ID)
		}
		seen[h.ID] = struct{}{}
	}
	return nil
}
