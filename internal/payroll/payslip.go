package payroll

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// WritePayslip renders p as a one-page A4 PDF.
func WritePayslip(w io.Writer, p *Payslip) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payslip "+p.Payment.ID, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", p.EmployeeName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Email: %s", p.Email))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", p.Payment.PaymentDate.Format("January 2006")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Payment date: %s  Method: %s", p.Payment.PaymentDate.String(), p.PaymentMethod))
	pdf.Ln(12)

	line := func(label string, amount decimal.Decimal) {
		pdf.CellFormat(120, 8, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 8, amount.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(170, 8, "Earnings", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	line("Base amount", p.Payment.Amount)
	if p.Payment.ExtraAmount.Valid {
		line("Extra hours", p.Payment.ExtraAmount.Decimal)
	}
	for _, b := range p.Bonuses {
		line("Bonus "+b.BonusDate.String()+note(b.BonusNote), b.Amount)
	}
	line("Bonus total", p.BonusTotal())
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(170, 8, "Deductions", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	for _, d := range p.Deductions {
		line("Deduction "+d.DeductionDate.String()+note(d.DeductionNote), d.Amount)
	}
	line("Deduction total", p.DeductionTotal())
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	line("Net", p.Net())

	if p.Payment.PaymentNote != nil && *p.Payment.PaymentNote != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(170, 6, *p.Payment.PaymentNote, "", "L", false)
	}

	return pdf.Output(w)
}

func note(s *string) string {
	if s == nil || *s == "" {
		return ""
	}
	return " (" + *s + ")"
}
