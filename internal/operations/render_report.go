package operations

import (
	"fmt"
	"time"

	"inheritance-engine/internal/division"
	"inheritance-engine/internal/model"
	"inheritance-engine/internal/report"
)

// RenderReportHandler runs the tax computation, and optionally the actual
// division, and renders both into a PDF. The estate total used for the
// division is the taxable amount.
type RenderReportHandler struct {
	defaultRounding model.RoundingPolicy
}

func (h *RenderReportHandler) Execute(body []byte) (any, []model.CalculationMessage) {
	var req model.ReportRequest
	if msgs := decode(body, &req); len(msgs) > 0 {
		return nil, msgs
	}

	tax, msgs := computeTax(req.TaxableAmount, req.FamilyStructure)
	if tax == nil {
		return nil, msgs
	}

	var div *model.DivisionResult
	if req.Division != nil {
		var err error
		div, err = division.Reallocate(tax.LegalHeirs, tax.TotalTaxAmount, req.TaxableAmount, divisionInput(*req.Division, h.defaultRounding))
		if err != nil {
			return nil, append(msgs, fromError(err)...)
		}
	}

	now := time.Now().UTC()
	pdf, err := report.Render(report.Input{Tax: tax, Division: div, GeneratedAt: now})
	if err != nil {
		return nil, append(msgs, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    model.CodeInternalError,
			Message: fmt.Sprintf("Failed to render report: %v", err),
		})
	}

	return &model.Attachment{
		ContentType: "application/pdf",
		Filename:    fmt.Sprintf("inheritance-tax-%s.pdf", now.Format("20060102-150405")),
		Body:        pdf,
	}, msgs
}
