// Package report renders inheritance tax results as a printable A4 PDF.
//
// Core PDF fonts only cover Latin-1, so heirs are listed by id and type
// rather than by their Japanese names.
package report

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"inheritance-engine/internal/model"
	"inheritance-engine/internal/money"
	"inheritance-engine/internal/taxcalc"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight

	rowHeight = 7.0
	font      = "Helvetica"
)

// Input is everything a report shows. Division is optional.
type Input struct {
	Tax         *model.TaxCalculationResult
	Division    *model.DivisionResult
	GeneratedAt time.Time
}

type column struct {
	title string
	width float64
	align string
}

type document struct {
	pdf *fpdf.Fpdf
	in  Input
}

// Render returns the PDF bytes for in.
func Render(in Input) ([]byte, error) {
	if in.Tax == nil {
		return nil, fmt.Errorf("report: tax result is required")
	}

	d := &document{pdf: fpdf.New("P", "mm", "A4", ""), in: in}
	d.pdf.SetMargins(marginLeft, marginTop, marginRight)
	d.pdf.SetAutoPageBreak(true, marginBottom)
	d.pdf.SetTitle("Inheritance Tax Calculation", false)
	d.pdf.SetFooterFunc(d.footer)
	d.pdf.AddPage()

	d.title()
	d.summary()
	d.heirTable()
	if in.Division != nil {
		d.divisionTable()
	}
	d.disclaimer()

	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *document) title() {
	d.pdf.SetFont(font, "B", 20)
	d.pdf.SetTextColor(0, 51, 102)
	d.pdf.CellFormat(contentWidth, 12, "Inheritance Tax Calculation", "", 1, "C", false, 0, "")

	d.pdf.SetFont(font, "I", 10)
	d.pdf.SetTextColor(80, 80, 80)
	d.pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Generated %s UTC, tax table effective %s",
		d.in.GeneratedAt.Format("2 January 2006 15:04"), taxcalc.TaxYear), "", 1, "C", false, 0, "")
	d.pdf.Ln(6)
}

func (d *document) heading(text string) {
	d.pdf.SetFont(font, "B", 12)
	d.pdf.SetTextColor(0, 51, 102)
	d.pdf.SetFillColor(245, 247, 250)
	d.pdf.SetDrawColor(200, 200, 200)
	d.pdf.CellFormat(contentWidth, 8, text, "1", 1, "L", true, 0, "")
}

func (d *document) summary() {
	t := d.in.Tax
	d.heading("Summary")

	rows := [][2]string{
		{"Taxable estate", money.FormatYen(t.TaxableAmount)},
		{"Statutory heirs counted for deduction", strconv.Itoa(t.StatutoryHeirCount)},
		{"Basic deduction", money.FormatYen(t.BasicDeduction)},
		{"Taxable inheritance", money.FormatYen(t.TaxableInheritance)},
		{"Total inheritance tax", money.FormatYen(t.TotalTaxAmount)},
	}
	if d.in.Division != nil {
		rows = append(rows, [2]string{"Total payable after surcharges", money.FormatYen(d.in.Division.TotalTaxAmount)})
	}

	d.pdf.SetFont(font, "", 10)
	d.pdf.SetTextColor(50, 50, 50)
	for _, r := range rows {
		d.pdf.CellFormat(contentWidth*0.6, rowHeight, r[0], "LB", 0, "L", false, 0, "")
		d.pdf.CellFormat(contentWidth*0.4, rowHeight, r[1], "RB", 1, "R", false, 0, "")
	}
	d.pdf.Ln(6)
}

func (d *document) heirTable() {
	d.heading("Statutory Shares")

	cols := []column{
		{"Heir", 30, "L"},
		{"Type", 36, "L"},
		{"Share", 22, "C"},
		{"Legal share amount", 42, "R"},
		{"Rate", 14, "R"},
		{"Tax", 36, "R"},
	}
	d.header(cols)

	details := make(map[string]model.HeirTaxDetail, len(d.in.Tax.HeirTaxDetails))
	for _, hd := range d.in.Tax.HeirTaxDetails {
		details[hd.HeirID] = hd
	}

	for _, h := range d.in.Tax.LegalHeirs {
		hd, ok := details[h.ID]
		cells := []string{h.ID, string(h.Type), h.InheritanceShare.String(), "-", "-", "-"}
		if ok {
			cells[3] = money.FormatYen(hd.LegalShareAmount)
			cells[4] = fmt.Sprintf("%d%%", hd.TaxRatePercent)
			cells[5] = money.FormatYen(hd.TaxBeforeAddition)
		}
		d.row(cols, cells)
	}
	d.pdf.Ln(6)
}

func (d *document) divisionTable() {
	d.heading("Actual Division")

	cols := []column{
		{"Heir", 28, "L"},
		{"Amount", 38, "R"},
		{"Percent", 20, "R"},
		{"Tax", 32, "R"},
		{"Surcharge", 30, "R"},
		{"Payable", 32, "R"},
	}
	d.header(cols)

	for _, hd := range d.in.Division.HeirDetails {
		d.row(cols, []string{
			hd.HeirID,
			money.FormatYen(hd.InheritanceAmount),
			money.FormatPercentage(hd.Percentage),
			money.FormatYen(hd.TaxAmount),
			money.FormatYen(hd.SurchargeDeductionAmount),
			money.FormatYen(hd.FinalTaxAmount),
		})
	}

	d.pdf.SetFont(font, "B", 9)
	d.row(cols, []string{
		"Total",
		money.FormatYen(d.in.Division.TotalAmount),
		"",
		money.FormatYen(d.in.Division.AllocatedTaxAmount),
		"",
		money.FormatYen(d.in.Division.TotalTaxAmount),
	})
	d.pdf.Ln(6)
}

func (d *document) header(cols []column) {
	d.pdf.SetFont(font, "B", 9)
	d.pdf.SetTextColor(255, 255, 255)
	d.pdf.SetFillColor(0, 51, 102)
	for _, c := range cols {
		d.pdf.CellFormat(c.width, rowHeight, c.title, "1", 0, "C", true, 0, "")
	}
	d.pdf.Ln(-1)
	d.pdf.SetFont(font, "", 9)
	d.pdf.SetTextColor(50, 50, 50)
}

func (d *document) row(cols []column, cells []string) {
	for i, c := range cols {
		d.pdf.CellFormat(c.width, rowHeight, cells[i], "1", 0, c.align, false, 0, "")
	}
	d.pdf.Ln(-1)
}

func (d *document) disclaimer() {
	d.pdf.SetFont(font, "I", 8)
	d.pdf.SetTextColor(120, 120, 120)
	d.pdf.MultiCell(contentWidth, 4,
		"Estimate under the statutory share method. Spousal tax credit, minor and disability credits "+
			"and lifetime gift adjustments are not applied. Consult a licensed tax accountant before filing.",
		"", "L", false)
}

func (d *document) footer() {
	d.pdf.SetY(-15)
	d.pdf.SetFont(font, "I", 8)
	d.pdf.SetTextColor(120, 120, 120)
	d.pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", d.pdf.PageNo()), "", 0, "C", false, 0, "")
}
