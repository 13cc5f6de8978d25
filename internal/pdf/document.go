package pdf

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/limovia/fleetcrm/internal/i18n"
	"github.com/limovia/fleetcrm/internal/models"
)

// RenderDocument draws a billing document (invoice, quote, proforma or
// credit note) and writes the PDF to w. Layout is fixed: company header
// band, client block, designation table, totals, footer.
func RenderDocument(w io.Writer, doc *models.Document, company *models.Company, lang string) error {
	p := fpdf.New("P", "mm", "A4", "")
	tr := p.UnicodeTranslatorFromDescriptor("")
	p.SetAutoPageBreak(true, 20)
	p.AddPage()

	// Header band
	p.SetFillColor(30, 41, 59)
	p.Rect(0, 0, 210, 30, "F")
	p.SetTextColor(255, 255, 255)
	p.SetFont("Helvetica", "B", 18)
	p.SetXY(10, 8)
	title := i18n.T(lang, "pdf_"+string(doc.Kind))
	p.CellFormat(120, 10, tr(title), "", 0, "L", false, 0, "")
	p.SetFont("Helvetica", "", 11)
	p.CellFormat(70, 10, tr(doc.Number), "", 0, "R", false, 0, "")

	p.SetTextColor(0, 0, 0)
	p.SetXY(10, 38)
	if company != nil {
		p.SetFont("Helvetica", "B", 11)
		p.CellFormat(100, 6, tr(company.Name), "", 1, "L", false, 0, "")
		p.SetFont("Helvetica", "", 9)
		p.CellFormat(100, 5, tr(company.Address), "", 1, "L", false, 0, "")
		if company.VATNumber != "" {
			p.CellFormat(100, 5, tr("TVA: "+company.VATNumber), "", 1, "L", false, 0, "")
		}
	}

	// Client block, right aligned
	p.SetXY(120, 38)
	p.SetFont("Helvetica", "B", 10)
	p.CellFormat(80, 6, tr(doc.ClientName), "", 2, "L", false, 0, "")
	p.SetFont("Helvetica", "", 9)
	p.MultiCell(80, 5, tr(doc.ClientAddr), "", "L", false)
	p.SetXY(120, p.GetY()+2)
	p.CellFormat(80, 5, doc.IssueDate, "", 1, "L", false, 0, "")

	// Designation table
	p.SetY(75)
	p.SetFont("Helvetica", "B", 9)
	p.SetFillColor(226, 232, 240)
	p.CellFormat(90, 7, tr(i18n.T(lang, "pdf_description")), "1", 0, "L", true, 0, "")
	p.CellFormat(20, 7, tr(i18n.T(lang, "pdf_quantity")), "1", 0, "C", true, 0, "")
	p.CellFormat(30, 7, tr(i18n.T(lang, "pdf_unit_price")), "1", 0, "R", true, 0, "")
	p.CellFormat(20, 7, tr(i18n.T(lang, "pdf_vat")), "1", 0, "R", true, 0, "")
	p.CellFormat(30, 7, tr(i18n.T(lang, "pdf_total_excl")), "1", 1, "R", true, 0, "")

	p.SetFont("Helvetica", "", 9)
	for _, item := range doc.Items {
		p.CellFormat(90, 7, tr(item.Description), "1", 0, "L", false, 0, "")
		p.CellFormat(20, 7, fmt.Sprintf("%.2f", item.Quantity), "1", 0, "C", false, 0, "")
		p.CellFormat(30, 7, fmt.Sprintf("%.2f", item.UnitPrice), "1", 0, "R", false, 0, "")
		p.CellFormat(20, 7, fmt.Sprintf("%.1f%%", item.VATRate), "1", 0, "R", false, 0, "")
		p.CellFormat(30, 7, fmt.Sprintf("%.2f", item.ExclTax()), "1", 1, "R", false, 0, "")
	}

	// Totals
	p.Ln(4)
	p.SetFont("Helvetica", "", 10)
	p.SetX(130)
	p.CellFormat(40, 7, tr(i18n.T(lang, "pdf_total_excl")), "", 0, "R", false, 0, "")
	p.CellFormat(30, 7, fmt.Sprintf("%.2f", doc.TotalExclTax()), "", 1, "R", false, 0, "")
	p.SetX(130)
	p.CellFormat(40, 7, tr(i18n.T(lang, "pdf_vat")), "", 0, "R", false, 0, "")
	p.CellFormat(30, 7, fmt.Sprintf("%.2f", doc.TotalVAT()), "", 1, "R", false, 0, "")
	p.SetFont("Helvetica", "B", 11)
	p.SetX(130)
	p.CellFormat(40, 8, tr(i18n.T(lang, "pdf_total_incl")), "T", 0, "R", false, 0, "")
	p.CellFormat(30, 8, fmt.Sprintf("%.2f", doc.TotalInclTax()), "T", 1, "R", false, 0, "")

	if doc.Notes != "" {
		p.Ln(6)
		p.SetFont("Helvetica", "I", 9)
		p.MultiCell(190, 5, tr(doc.Notes), "", "L", false)
	}

	// Footer
	p.SetY(-25)
	p.SetFont("Helvetica", "", 8)
	p.SetTextColor(100, 116, 139)
	footer := doc.Number + " - " + doc.IssueDate
	p.CellFormat(190, 5, tr(footer), "T", 0, "C", false, 0, "")

	return p.Output(w)
}
