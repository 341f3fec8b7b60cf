package operations

import "inheritance-engine/internal/model"

// OperationHandler defines the contract for all calculation operations.
// Each operation decodes and validates its request body and computes a fresh
// result; no state is kept between calls.
type OperationHandler interface {
	Execute(body []byte) (any, []model.CalculationMessage)
}
