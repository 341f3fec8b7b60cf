package operations

import "inheritance-engine/internal/model"

const (
	OpDetermineHeirs          = "determine_heirs"
	OpCalculateTaxAmount      = "calculate_tax_amount"
	OpCalculateActualDivision = "calculate_actual_division"
	OpRenderReport            = "render_report"
	OpTaxTable                = "tax_table"
)

type Options struct {
	// DefaultRounding applies to percentage divisions that omit rounding_method.
	DefaultRounding model.RoundingPolicy
}

type Registry struct {
	handlers map[string]OperationHandler
}

func NewRegistry(opts Options) *Registry {
	if opts.DefaultRounding == "" {
		opts.DefaultRounding = model.RoundingRound
	}
	return &Registry{handlers: map[string]OperationHandler{
		OpDetermineHeirs:          &DetermineHeirsHandler{},
		OpCalculateTaxAmount:      &CalculateTaxAmountHandler{},
		OpCalculateActualDivision: &CalculateActualDivisionHandler{defaultRounding: opts.DefaultRounding},
		OpRenderReport:            &RenderReportHandler{defaultRounding: opts.DefaultRounding},
		OpTaxTable:                &TaxTableHandler{},
	}}
}

func (r *Registry) Get(name string) (OperationHandler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}
