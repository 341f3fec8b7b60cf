package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"inheritance-engine/internal/model"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "0", Format(0))
	assert.Equal(t, "999", Format(999))
	assert.Equal(t, "48,000,000", Format(48_000_000))
	assert.Equal(t, "-1,500", Format(-1_500))
	assert.Equal(t, "38,500,000 JPY", FormatYen(38_500_000))
}

func TestFormatShare(t *testing.T) {
	assert.Equal(t, "50.0%", FormatShare(model.NewShare(1, 2)))
	assert.Equal(t, "66.7%", FormatShare(model.NewShare(2, 3)))
	assert.Equal(t, "0.0%", FormatShare(model.Share{}))
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "33.33%", FormatPercentage(decimal.RequireFromString("33.333")))
	assert.Equal(t, "80.00%", FormatPercentage(decimal.NewFromInt(80)))
}
