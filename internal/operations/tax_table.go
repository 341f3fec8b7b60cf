package operations

import (
	"inheritance-engine/internal/model"
	"inheritance-engine/internal/taxcalc"
)

// TaxTableHandler publishes the bracket table in force. It takes no input.
type TaxTableHandler struct{}

func (h *TaxTableHandler) Execute(_ []byte) (any, []model.CalculationMessage) {
	return taxTableResult{
		TaxYear:               taxcalc.TaxYear,
		BasicDeductionBase:    taxcalc.BasicDeductionBase,
		BasicDeductionPerHeir: taxcalc.BasicDeductionPerHeir,
		Brackets:              taxcalc.Brackets,
	}, nil
}
