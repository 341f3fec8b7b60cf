// Package taxcalc computes the aggregate inheritance tax from statutory shares.
package taxcalc

import (
	"fmt"
	"math/big"

	"inheritance-engine/internal/heirs"
	"inheritance-engine/internal/model"
)

const (
	BasicDeductionBase    int64 = 30_000_000
	BasicDeductionPerHeir int64 = 6_000_000

	// legal share amounts are truncated to whole thousands of yen
	shareAmountUnit int64 = 1_000
)

// BasicDeduction returns the tax-exempt threshold for the heir set.
func BasicDeduction(hs []model.Heir) int64 {
	return BasicDeductionBase + BasicDeductionPerHeir*int64(heirs.DeductionHeadcount(hs))
}

// Compute runs the statutory two-step computation: each statutory heir is
// taxed on its share of the taxable inheritance and the results are summed.
// The two-fold addition is not applied at this stage.
func Compute(taxableAmount int64, hs []model.Heir) (*model.TaxCalculationResult, error) {
	if taxableAmount < 0 {
		return nil, fmt.Errorf("%w: taxable amount must not be negative, got %d", model.ErrInvalidAmount, taxableAmount)
	}

	deduction := BasicDeduction(hs)
	taxable := max(0, taxableAmount-deduction)

	result := &model.TaxCalculationResult{
		TaxableAmount:      taxableAmount,
		StatutoryHeirCount: heirs.DeductionHeadcount(hs),
		BasicDeduction:     deduction,
		TaxableInheritance: taxable,
		LegalHeirs:         hs,
		HeirTaxDetails:     make([]model.HeirTaxDetail, 0, len(hs)),
	}

	for _, h := range hs {
		if !h.Type.Statutory() || h.InheritanceShare.IsZero() {
			continue
		}

		amount := LegalShareAmount(taxable, h.InheritanceShare)
		tax, bracket := TaxOnAmount(amount)
		if amount == 0 {
			bracket = Bracket{}
		}

		result.HeirTaxDetails = append(result.HeirTaxDetails, model.HeirTaxDetail{
			HeirID:            h.ID,
			HeirName:          h.Name,
			Relationship:      h.Relationship,
			InheritanceShare:  h.InheritanceShare,
			LegalShareAmount:  amount,
			TaxRatePercent:    bracket.RatePercent,
			BracketDeduction:  bracket.Deduction,
			TaxBeforeAddition: tax,
		})
		result.TotalTaxAmount += tax
	}

	return result, nil
}

// LegalShareAmount is taxable × share truncated to the nearest 1,000 yen.
func LegalShareAmount(taxable int64, share model.Share) int64 {
	r := share.Rat()
	n := new(big.Int).Mul(big.NewInt(taxable), r.Num())
	n.Quo(n, r.Denom())
	amount := n.Int64()
	return amount - amount%shareAmountUnit
}
