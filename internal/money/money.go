// Package money formats yen amounts and shares for display.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"inheritance-engine/internal/model"
)

// Format renders an amount with thousands separators, e.g. 1,234,000.
func Format(amount int64) string {
	return message.NewPrinter(language.Japanese).Sprintf("%d", amount)
}

// FormatYen renders an amount with the yen suffix used in reports.
func FormatYen(amount int64) string {
	return Format(amount) + " JPY"
}

// FormatShare renders a statutory share as a percentage with one decimal.
func FormatShare(s model.Share) string {
	return message.NewPrinter(language.Japanese).Sprintf("%.1f%%", s.Float64()*100)
}

// FormatPercentage renders a division percentage with two decimals.
func FormatPercentage(p decimal.Decimal) string {
	return p.StringFixed(2) + "%"
}
