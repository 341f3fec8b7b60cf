package model

type HeirTaxDetail struct {
	HeirID            string `json:"heir_id"`
	HeirName          string `json:"heir_name"`
	Relationship      string `json:"relationship"`
	InheritanceShare  Share  `json:"inheritance_share"`
	LegalShareAmount  int64  `json:"legal_share_amount"`
	TaxRatePercent    int64  `json:"tax_rate_percent"`
	BracketDeduction  int64  `json:"bracket_deduction"`
	TaxBeforeAddition int64  `json:"tax_before_addition"`
}

type TaxCalculationResult struct {
	TaxableAmount      int64           `json:"taxable_amount"`
	StatutoryHeirCount int             `json:"statutory_heir_count"`
	BasicDeduction     int64           `json:"basic_deduction"`
	TaxableInheritance int64           `json:"taxable_inheritance"`
	TotalTaxAmount     int64           `json:"total_tax_amount"`
	LegalHeirs         []Heir          `json:"legal_heirs"`
	HeirTaxDetails     []HeirTaxDetail `json:"heir_tax_details"`
}
