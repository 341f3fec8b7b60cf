package operations

import (
	"fmt"

	"inheritance-engine/internal/heirs"
	"inheritance-engine/internal/model"
	"inheritance-engine/internal/money"
	"inheritance-engine/internal/taxcalc"
)

type CalculateTaxAmountHandler struct{}

func (h *CalculateTaxAmountHandler) Execute(body []byte) (any, []model.CalculationMessage) {
	var req model.TaxAmountRequest
	if msgs := decode(body, &req); len(msgs) > 0 {
		return nil, msgs
	}

	res, msgs := computeTax(req.TaxableAmount, req.FamilyStructure)
	if res == nil {
		return nil, msgs
	}
	return newTaxResult(res), msgs
}

// computeTax determines the heirs and the aggregate tax, warning when the
// estate falls within the basic deduction.
func computeTax(taxableAmount int64, fs model.FamilyStructure) (*model.TaxCalculationResult, []model.CalculationMessage) {
	hs, err := heirs.Determine(fs)
	if err != nil {
		return nil, fromError(err)
	}

	res, err := taxcalc.Compute(taxableAmount, hs)
	if err != nil {
		return nil, fromError(err)
	}

	var msgs []model.CalculationMessage
	if res.TaxableInheritance == 0 {
		msgs = append(msgs, warning(model.CodeNoTaxDue, fmt.Sprintf(
			"Taxable amount %s does not exceed the basic deduction of %s",
			money.FormatYen(taxableAmount), money.FormatYen(res.BasicDeduction))))
	}
	return res, msgs
}
