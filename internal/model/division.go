package model

import "github.com/shopspring/decimal"

type DivisionMode string

const (
	DivisionModeAmount     DivisionMode = "amount"
	DivisionModePercentage DivisionMode = "percentage"
)

type RoundingPolicy string

const (
	RoundingRound RoundingPolicy = "round"
	RoundingFloor RoundingPolicy = "floor"
	RoundingCeil  RoundingPolicy = "ceil"
)

func (p RoundingPolicy) Valid() bool {
	switch p {
	case RoundingRound, RoundingFloor, RoundingCeil:
		return true
	}
	return false
}

// DivisionInput is an actual division of the estate keyed by heir id.
// Percentages are only read in percentage mode.
type DivisionInput struct {
	Mode        DivisionMode
	Amounts     map[string]int64
	Percentages map[string]decimal.Decimal
	Rounding    RoundingPolicy
}

type HeirDivisionDetail struct {
	HeirID                   string          `json:"heir_id"`
	HeirName                 string          `json:"heir_name"`
	Relationship             string          `json:"relationship"`
	Type                     HeirType        `json:"type"`
	TwoFoldAddition          bool            `json:"two_fold_addition"`
	InheritanceAmount        int64           `json:"inheritance_amount"`
	Percentage               decimal.Decimal `json:"percentage"`
	TaxAmount                int64           `json:"tax_amount"`
	SurchargeDeductionAmount int64           `json:"surcharge_deduction_amount"`
	FinalTaxAmount           int64           `json:"final_tax_amount"`
}

type DivisionResult struct {
	TotalAmount        int64                `json:"total_amount"`
	AllocatedTaxAmount int64                `json:"allocated_tax_amount"`
	TotalTaxAmount     int64                `json:"total_tax_amount"`
	HeirDetails        []HeirDivisionDetail `json:"heir_details"`
}
