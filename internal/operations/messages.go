package operations

import (
	"errors"
	"fmt"

	"inheritance-engine/internal/model"
)

var errorCodes = []struct {
	err  error
	code string
}{
	{model.ErrInvalidStructure, model.CodeInvalidStructure},
	{model.ErrInvalidAmount, model.CodeInvalidAmount},
	{model.ErrDivisionMismatch, model.CodeDivisionMismatch},
	{model.ErrUnknownHeir, model.CodeUnknownHeir},
	{model.ErrInvalidRoundingPolicy, model.CodeInvalidRoundingPolicy},
	{model.ErrInvalidDivisionMode, model.CodeInvalidDivisionMode},
}

// fromError converts a domain error into a single critical message.
func fromError(err error) []model.CalculationMessage {
	msg := model.CalculationMessage{
		Level:   model.LevelCritical,
		Code:    model.CodeInternalError,
		Message: err.Error(),
	}

	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			msg.Code = ec.code
			break
		}
	}

	var mismatch *model.DivisionMismatchError
	if errors.As(err, &mismatch) {
		msg.Field = mismatch.Field
		msg.Message = fmt.Sprintf("Division %s sum to %s but must total %s",
			mismatch.Field, mismatch.Actual.String(), mismatch.Expected.String())
	}

	return []model.CalculationMessage{msg}
}

func warning(code, message string) model.CalculationMessage {
	return model.CalculationMessage{
		Level:   model.LevelWarning,
		Code:    code,
		Message: message,
	}
}
