package operations

import (
	"github.com/shopspring/decimal"

	"inheritance-engine/internal/model"
	"inheritance-engine/internal/money"
	"inheritance-engine/internal/taxcalc"
)

// Views pair every monetary and share value with a display string.

type heirView struct {
	ID                        string         `json:"id"`
	Name                      string         `json:"name"`
	Type                      model.HeirType `json:"type"`
	Relationship              string         `json:"relationship"`
	InheritanceShare          model.Share    `json:"inheritance_share"`
	InheritanceShareFormatted string         `json:"inheritance_share_formatted"`
	TwoFoldAddition           bool           `json:"two_fold_addition"`
	IsAdopted                 bool           `json:"is_adopted"`
}

func newHeirViews(hs []model.Heir) []heirView {
	out := make([]heirView, 0, len(hs))
	for _, h := range hs {
		out = append(out, heirView{
			ID:                        h.ID,
			Name:                      h.Name,
			Type:                      h.Type,
			Relationship:              h.Relationship,
			InheritanceShare:          h.InheritanceShare,
			InheritanceShareFormatted: money.FormatShare(h.InheritanceShare),
			TwoFoldAddition:           h.TwoFoldAddition,
			IsAdopted:                 h.IsAdopted,
		})
	}
	return out
}

type heirsResult struct {
	LegalHeirs              []heirView `json:"legal_heirs"`
	TotalHeirsCount         int        `json:"total_heirs_count"`
	StatutoryHeirCount      int        `json:"statutory_heir_count"`
	BasicDeduction          int64      `json:"basic_deduction"`
	BasicDeductionFormatted string     `json:"basic_deduction_formatted"`
}

type heirTaxView struct {
	HeirID                     string      `json:"heir_id"`
	HeirName                   string      `json:"heir_name"`
	Relationship               string      `json:"relationship"`
	InheritanceShare           model.Share `json:"inheritance_share"`
	InheritanceShareFormatted  string      `json:"inheritance_share_formatted"`
	LegalShareAmount           int64       `json:"legal_share_amount"`
	LegalShareAmountFormatted  string      `json:"legal_share_amount_formatted"`
	TaxRatePercent             int64       `json:"tax_rate_percent"`
	BracketDeduction           int64       `json:"bracket_deduction"`
	TaxBeforeAddition          int64       `json:"tax_before_addition"`
	TaxBeforeAdditionFormatted string      `json:"tax_before_addition_formatted"`
}

type taxResult struct {
	TaxableAmount               int64         `json:"taxable_amount"`
	TaxableAmountFormatted      string        `json:"taxable_amount_formatted"`
	StatutoryHeirCount          int           `json:"statutory_heir_count"`
	BasicDeduction              int64         `json:"basic_deduction"`
	BasicDeductionFormatted     string        `json:"basic_deduction_formatted"`
	TaxableInheritance          int64         `json:"taxable_inheritance"`
	TaxableInheritanceFormatted string        `json:"taxable_inheritance_formatted"`
	TotalTaxAmount              int64         `json:"total_tax_amount"`
	TotalTaxAmountFormatted     string        `json:"total_tax_amount_formatted"`
	LegalHeirs                  []heirView    `json:"legal_heirs"`
	HeirTaxDetails              []heirTaxView `json:"heir_tax_details"`
}

func newTaxResult(r *model.TaxCalculationResult) taxResult {
	details := make([]heirTaxView, 0, len(r.HeirTaxDetails))
	for _, d := range r.HeirTaxDetails {
		details = append(details, heirTaxView{
			HeirID:                     d.HeirID,
			HeirName:                   d.HeirName,
			Relationship:               d.Relationship,
			InheritanceShare:           d.InheritanceShare,
			InheritanceShareFormatted:  money.FormatShare(d.InheritanceShare),
			LegalShareAmount:           d.LegalShareAmount,
			LegalShareAmountFormatted:  money.FormatYen(d.LegalShareAmount),
			TaxRatePercent:             d.TaxRatePercent,
			BracketDeduction:           d.BracketDeduction,
			TaxBeforeAddition:          d.TaxBeforeAddition,
			TaxBeforeAdditionFormatted: money.FormatYen(d.TaxBeforeAddition),
		})
	}

	return taxResult{
		TaxableAmount:               r.TaxableAmount,
		TaxableAmountFormatted:      money.FormatYen(r.TaxableAmount),
		StatutoryHeirCount:          r.StatutoryHeirCount,
		BasicDeduction:              r.BasicDeduction,
		BasicDeductionFormatted:     money.FormatYen(r.BasicDeduction),
		TaxableInheritance:          r.TaxableInheritance,
		TaxableInheritanceFormatted: money.FormatYen(r.TaxableInheritance),
		TotalTaxAmount:              r.TotalTaxAmount,
		TotalTaxAmountFormatted:     money.FormatYen(r.TotalTaxAmount),
		LegalHeirs:                  newHeirViews(r.LegalHeirs),
		HeirTaxDetails:              details,
	}
}

type heirDivisionView struct {
	HeirID                            string          `json:"heir_id"`
	HeirName                          string          `json:"heir_name"`
	Relationship                      string          `json:"relationship"`
	Type                              model.HeirType  `json:"type"`
	TwoFoldAddition                   bool            `json:"two_fold_addition"`
	InheritanceAmount                 int64           `json:"inheritance_amount"`
	InheritanceAmountFormatted        string          `json:"inheritance_amount_formatted"`
	Percentage                        decimal.Decimal `json:"percentage"`
	PercentageFormatted               string          `json:"percentage_formatted"`
	TaxAmount                         int64           `json:"tax_amount"`
	TaxAmountFormatted                string          `json:"tax_amount_formatted"`
	SurchargeDeductionAmount          int64           `json:"surcharge_deduction_amount"`
	SurchargeDeductionAmountFormatted string          `json:"surcharge_deduction_amount_formatted"`
	FinalTaxAmount                    int64           `json:"final_tax_amount"`
	FinalTaxAmountFormatted           string          `json:"final_tax_amount_formatted"`
}

type divisionResult struct {
	TotalAmount                 int64              `json:"total_amount"`
	TotalAmountFormatted        string             `json:"total_amount_formatted"`
	AllocatedTaxAmount          int64              `json:"allocated_tax_amount"`
	AllocatedTaxAmountFormatted string             `json:"allocated_tax_amount_formatted"`
	TotalTaxAmount              int64              `json:"total_tax_amount"`
	TotalTaxAmountFormatted     string             `json:"total_tax_amount_formatted"`
	HeirDetails                 []heirDivisionView `json:"heir_details"`
}

func newDivisionResult(r *model.DivisionResult) divisionResult {
	details := make([]heirDivisionView, 0, len(r.HeirDetails))
	for _, d := range r.HeirDetails {
		details = append(details, heirDivisionView{
			HeirID:                            d.HeirID,
			HeirName:                          d.HeirName,
			Relationship:                      d.Relationship,
			Type:                              d.Type,
			TwoFoldAddition:                   d.TwoFoldAddition,
			InheritanceAmount:                 d.InheritanceAmount,
			InheritanceAmountFormatted:        money.FormatYen(d.InheritanceAmount),
			Percentage:                        d.Percentage,
			PercentageFormatted:               money.FormatPercentage(d.Percentage),
			TaxAmount:                         d.TaxAmount,
			TaxAmountFormatted:                money.FormatYen(d.TaxAmount),
			SurchargeDeductionAmount:          d.SurchargeDeductionAmount,
			SurchargeDeductionAmountFormatted: money.FormatYen(d.SurchargeDeductionAmount),
			FinalTaxAmount:                    d.FinalTaxAmount,
			FinalTaxAmountFormatted:           money.FormatYen(d.FinalTaxAmount),
		})
	}

	return divisionResult{
		TotalAmount:                 r.TotalAmount,
		TotalAmountFormatted:        money.FormatYen(r.TotalAmount),
		AllocatedTaxAmount:          r.AllocatedTaxAmount,
		AllocatedTaxAmountFormatted: money.FormatYen(r.AllocatedTaxAmount),
		TotalTaxAmount:              r.TotalTaxAmount,
		TotalTaxAmountFormatted:     money.FormatYen(r.TotalTaxAmount),
		HeirDetails:                 details,
	}
}

type taxTableResult struct {
	TaxYear               string            `json:"tax_year"`
	BasicDeductionBase    int64             `json:"basic_deduction_base"`
	BasicDeductionPerHeir int64             `json:"basic_deduction_per_heir"`
	Brackets              []taxcalc.Bracket `json:"brackets"`
}
