// Package report renders an estimate as a downloadable quote workbook. It
// consumes the estimate snapshot, the calculation result, and the per-room
// line-item descriptions; it owns the document layout and nothing else.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/desirecabinets/estimator/internal/estimate"
	"github.com/desirecabinets/estimator/internal/lineitem"
	"github.com/desirecabinets/estimator/internal/pricing"
)

const sheet = "Sheet1"

// ContentType is the MIME type of the generated document.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Write renders the quote document and streams it to w.
func Write(w io.Writer, est *estimate.Estimate, calc pricing.Result, descriptions []lineitem.Description) error {
	f, err := Build(est, calc, descriptions)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write quote workbook: %w", err)
	}
	return nil
}

// Build assembles the quote workbook: header, bill-to block, one line-item
// section per room, then the totals and terms.
func Build(est *estimate.Estimate, calc pricing.Result, descriptions []lineitem.Description) (*excelize.File, error) {
	f := excelize.NewFile()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create bold style: %w", err)
	}

	setCol := func(col string, width float64) {
		_ = f.SetColWidth(sheet, col, col, width)
	}
	setCol("A", 64)
	setCol("B", 8)
	setCol("C", 14)
	setCol("D", 14)

	row := 1
	set := func(col string, v any) {
		_ = f.SetCellValue(sheet, col+strconv.Itoa(row), v)
	}
	embolden := func(col string) {
		cell := col + strconv.Itoa(row)
		_ = f.SetCellStyle(sheet, cell, cell, bold)
	}

	set("A", "Desire Cabinets LLC")
	embolden("A")
	set("D", "QUOTE")
	embolden("D")
	row += 2

	quoteNumber := est.QuoteNumber
	if est.Revision > 0 {
		quoteNumber = fmt.Sprintf("%s (Rev. %d)", quoteNumber, est.Revision)
	}
	set("A", "QUOTE #")
	set("B", quoteNumber)
	row++
	set("A", "DATE")
	set("B", est.Date)
	row += 2

	set("A", "BILL TO:")
	embolden("A")
	row++
	for _, line := range []string{est.Client.Name, est.Client.Address, est.Client.Phone, est.Client.Email} {
		if line == "" {
			continue
		}
		set("A", line)
		row++
	}
	row++

	set("A", "ITEM DESCRIPTION")
	set("B", "QTY")
	set("C", "UNIT PRICE")
	set("D", "AMOUNT")
	for _, col := range []string{"A", "B", "C", "D"} {
		embolden(col)
	}
	row++

	for i, desc := range descriptions {
		var roomTotal float64
		if i < len(calc.Rooms) {
			roomTotal = calc.Rooms[i].Total
		}

		set("A", desc.Title)
		embolden("A")
		set("B", 1)
		set("C", money(roomTotal))
		set("D", money(roomTotal))
		row++

		for _, detail := range desc.Details {
			set("A", "- "+detail)
			row++
		}
		if i < len(est.Rooms) && est.Rooms[i].Notes != "" {
			set("A", "- Note: "+est.Rooms[i].Notes)
			row++
		}
	}
	row++

	set("A", "Thank you for your business!")
	row++

	set("C", "SUBTOTAL")
	set("D", money(calc.Totals.Subtotal))
	row++

	if calc.Totals.Discount != 0 {
		label := "DISCOUNT"
		if est.DiscountType == estimate.DiscountPercent {
			label = fmt.Sprintf("DISCOUNT (%s%%)", trimNumber(est.DiscountValue))
		}
		set("C", label)
		set("D", "-"+money(calc.Totals.Discount))
		row++
	}

	if est.TaxRate > 0 {
		set("C", fmt.Sprintf("TAX (%s%%)", trimNumber(est.TaxRate)))
		set("D", money(calc.Totals.Tax))
		row++
	}

	set("C", "TOTAL")
	set("D", money(calc.Totals.Total))
	embolden("C")
	embolden("D")
	row += 2

	set("A", "Terms: 50% deposit required. Balance due upon completion. Valid for 30 days.")
	if est.Notes != "" {
		row++
		set("A", "Notes: "+est.Notes)
	}

	return f, nil
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func trimNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
