package model

import "github.com/shopspring/decimal"

type HeirsRequest struct {
	FamilyStructure FamilyStructure `json:"family_structure"`
}

type TaxAmountRequest struct {
	TaxableAmount   int64           `json:"taxable_amount" validate:"gt=0"`
	FamilyStructure FamilyStructure `json:"family_structure"`
}

// DivisionSpec is the caller-facing shape of an actual division.
type DivisionSpec struct {
	Mode           string                     `json:"mode" validate:"required,oneof=amount percentage"`
	Amounts        map[string]int64           `json:"amounts,omitempty" validate:"required_if=Mode amount"`
	Percentages    map[string]decimal.Decimal `json:"percentages,omitempty" validate:"required_if=Mode percentage"`
	RoundingMethod string                     `json:"rounding_method,omitempty"`
}

type ActualDivisionRequest struct {
	DivisionSpec
	TotalAmount    int64  `json:"total_amount" validate:"gt=0"`
	TotalTaxAmount int64  `json:"total_tax_amount" validate:"gte=0"`
	Heirs          []Heir `json:"heirs" validate:"required,min=1,dive"`
}

type ReportRequest struct {
	TaxableAmount   int64           `json:"taxable_amount" validate:"gt=0"`
	FamilyStructure FamilyStructure `json:"family_structure"`
	Division        *DivisionSpec   `json:"division,omitempty"`
}
