package operations

import (
	"inheritance-engine/internal/heirs"
	"inheritance-engine/internal/model"
	"inheritance-engine/internal/money"
	"inheritance-engine/internal/taxcalc"
)

type DetermineHeirsHandler struct{}

func (h *DetermineHeirsHandler) Execute(body []byte) (any, []model.CalculationMessage) {
	var req model.HeirsRequest
	if msgs := decode(body, &req); len(msgs) > 0 {
		return nil, msgs
	}

	hs, err := heirs.Determine(req.FamilyStructure)
	if err != nil {
		return nil, fromError(err)
	}

	deduction := taxcalc.BasicDeduction(hs)
	return heirsResult{
		LegalHeirs:              newHeirViews(hs),
		TotalHeirsCount:         len(hs),
		StatutoryHeirCount:      heirs.DeductionHeadcount(hs),
		BasicDeduction:          deduction,
		BasicDeductionFormatted: money.FormatYen(deduction),
	}, nil
}
