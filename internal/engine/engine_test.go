package engine

import (
	"testing"

	"github.com/google/uuid"

	"inheritance-engine/internal/model"
	"inheritance-engine/internal/operations"
)

func newEngine() *Engine {
	return New(operations.NewRegistry(operations.Options{DefaultRounding: model.RoundingRound}))
}

func TestDetermineHeirs(t *testing.T) {
	resp := newEngine().Process(operations.OpDetermineHeirs,
		[]byte(`{"family_structure":{"spouse_exists":true,"children_count":2}}`))

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}

	if resp.CalculationMetadata.Operation != operations.OpDetermineHeirs {
		t.Fatalf("expected operation %s, got %s", operations.OpDetermineHeirs, resp.CalculationMetadata.Operation)
	}

	if _, err := uuid.Parse(resp.CalculationMetadata.CalculationID); err != nil {
		t.Fatalf("expected uuid calculation_id, got %q", resp.CalculationMetadata.CalculationID)
	}

	if len(resp.CalculationResult.Messages) != 0 {
		t.Fatalf("expected 0 messages, got %d", len(resp.CalculationResult.Messages))
	}

	if resp.CalculationResult.Result == nil {
		t.Fatal("expected a result")
	}
}

func TestUnknownOperation(t *testing.T) {
	resp := newEngine().Process("calculate_gift_tax", []byte(`{}`))

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeFailure {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}

	msgs := resp.CalculationResult.Messages
	if len(msgs) != 1 || msgs[0].Code != model.CodeUnknownOperation {
		t.Fatalf("expected one UNKNOWN_OPERATION message, got %+v", msgs)
	}
}

func TestCriticalMessageDropsResult(t *testing.T) {
	resp := newEngine().Process(operations.OpDetermineHeirs,
		[]byte(`{"family_structure":{"children_count":-1,"parents_alive":3}}`))

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeFailure {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}

	if resp.CalculationResult.Result != nil {
		t.Fatalf("expected no result on failure, got %+v", resp.CalculationResult.Result)
	}

	msgs := resp.CalculationResult.Messages
	if len(msgs) < 2 {
		t.Fatalf("expected a message per invalid field, got %d", len(msgs))
	}
	for i, m := range msgs {
		if m.ID != i {
			t.Fatalf("expected message %d to have id %d, got %d", i, i, m.ID)
		}
	}
}

func TestWarningKeepsResult(t *testing.T) {
	resp := newEngine().Process(operations.OpCalculateTaxAmount,
		[]byte(`{"taxable_amount":10000000,"family_structure":{"spouse_exists":true}}`))

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}

	msgs := resp.CalculationResult.Messages
	if len(msgs) != 1 || msgs[0].Level != model.LevelWarning || msgs[0].Code != model.CodeNoTaxDue {
		t.Fatalf("expected one NO_TAX_DUE warning, got %+v", msgs)
	}

	if resp.CalculationResult.Result == nil {
		t.Fatal("expected the result to survive a warning")
	}
}

func TestActualDivision(t *testing.T) {
	body := `{
		"mode": "amount",
		"total_amount": 1000000,
		"total_tax_amount": 100000,
		"amounts": {"child_1": 600000, "child_2": 400000},
		"heirs": [
			{"id": "child_1", "type": "child", "inheritance_share": "1/2"},
			{"id": "child_2", "type": "child", "inheritance_share": "1/2"}
		]
	}`

	resp := newEngine().Process(operations.OpCalculateActualDivision, []byte(body))

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s: %+v", resp.CalculationMetadata.CalculationOutcome, resp.CalculationResult.Messages)
	}
}
