package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"inheritance-engine/internal/model"
	"inheritance-engine/internal/operations"
)

type Engine struct {
	registry *operations.Registry
}

func New(registry *operations.Registry) *Engine {
	return &Engine{registry: registry}
}

// Process runs a single operation against body and wraps the outcome in the
// calculation envelope. Any critical message fails the calculation and
// discards the result.
func (e *Engine) Process(operation string, body []byte) *model.CalculationResponse {
	start := time.Now()

	var result any
	var msgs []model.CalculationMessage

	handler, ok := e.registry.Get(operation)
	if ok {
		result, msgs = handler.Execute(body)
	} else {
		msgs = []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    model.CodeUnknownOperation,
			Message: fmt.Sprintf("Unknown operation: %s", operation),
		}}
	}

	outcome := model.OutcomeSuccess
	allMessages := make([]model.CalculationMessage, 0, len(msgs))
	for _, m := range msgs {
		m.ID = len(allMessages)
		allMessages = append(allMessages, m)
		if m.Level == model.LevelCritical {
			outcome = model.OutcomeFailure
		}
	}
	if outcome == model.OutcomeFailure {
		result = nil
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			Operation:              operation,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: model.CalculationResult{
			Messages: allMessages,
			Result:   result,
		},
	}
}
