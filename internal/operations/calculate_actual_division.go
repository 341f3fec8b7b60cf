package operations

import (
	"inheritance-engine/internal/division"
	"inheritance-engine/internal/heirs"
	"inheritance-engine/internal/model"
)

type CalculateActualDivisionHandler struct {
	defaultRounding model.RoundingPolicy
}

func (h *CalculateActualDivisionHandler) Execute(body []byte) (any, []model.CalculationMessage) {
	var req model.ActualDivisionRequest
	if msgs := decode(body, &req); len(msgs) > 0 {
		return nil, msgs
	}

	hs := normalizeHeirs(req.Heirs)
	res, err := division.Reallocate(hs, req.TotalTaxAmount, req.TotalAmount, divisionInput(req.DivisionSpec, h.defaultRounding))
	if err != nil {
		return nil, fromError(err)
	}
	return newDivisionResult(res), nil
}

// divisionInput maps the request shape onto the reallocation input, filling
// in the configured rounding policy when none is given.
func divisionInput(spec model.DivisionSpec, defaultRounding model.RoundingPolicy) model.DivisionInput {
	rounding := model.RoundingPolicy(spec.RoundingMethod)
	if rounding == "" {
		rounding = defaultRounding
	}
	return model.DivisionInput{
		Mode:        model.DivisionMode(spec.Mode),
		Amounts:     spec.Amounts,
		Percentages: spec.Percentages,
		Rounding:    rounding,
	}
}

// normalizeHeirs derives the surcharge flag and relationship label from the
// heir type, so callers cannot send a flag that contradicts the type.
func normalizeHeirs(in []model.Heir) []model.Heir {
	out := make([]model.Heir, len(in))
	for i, h := range in {
		h.TwoFoldAddition = heirs.TwoFoldAddition(h.Type)
		h.IsAdopted = h.Type.Adopted()
		if h.Relationship == "" {
			h.Relationship = h.Type.Label()
		}
		out[i] = h
	}
	return out
}
