package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/contractflow/backend/internal/model"
)

const dateLayout = "2006-01-02"

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

// Summary renders a one-page contract overview with the parties and the
// obligation table.
func (g *Generator) Summary(summary model.ContractSummary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "Contract summary", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, titleLine(summary.Contract), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	g.addField(pdf, "Status", string(summary.Contract.Status))
	g.addField(pdf, "Type", string(summary.Contract.Type))
	g.addField(pdf, "Modality", string(summary.Contract.Modality))
	g.addField(pdf, "Total amount", summary.Contract.TotalAmount.StringFixed(2)+" "+summary.Contract.Currency)
	if summary.Contract.AdministrativeProcess != nil {
		g.addField(pdf, "Administrative process", *summary.Contract.AdministrativeProcess)
	}
	pdf.Ln(2)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Supplier", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	pdf.MultiCell(0, 5, summary.Supplier.CorporateName, "", "L", false)
	pdf.MultiCell(0, 5, "Tax ID: "+summary.Supplier.TaxID, "", "L", false)
	pdf.Ln(2)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Managing unit", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	unit := summary.OrgUnit.Name
	if summary.OrgUnit.Code != nil {
		unit = fmt.Sprintf("%s (%s)", unit, *summary.OrgUnit.Code)
	}
	pdf.MultiCell(0, 5, unit, "", "L", false)
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Obligations", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)

	headers := []string{"Clause", "Description", "Due date", "Status"}
	colWidths := []float64{25, 95, 30, 30}
	g.drawRow(pdf, headers, colWidths, true)
	for _, obligation := range summary.Obligations {
		dueDate := ""
		if obligation.DueDate != nil {
			dueDate = formatDate(*obligation.DueDate)
		}
		g.drawRow(pdf, []string{
			obligation.ClauseRef,
			obligation.Description,
			dueDate,
			obligation.Status,
		}, colWidths, false)
	}
	if len(summary.Obligations) == 0 {
		pdf.CellFormat(0, 6, "No obligations registered.", "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) addField(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont(g.fontName, "B", 10)
	pdf.CellFormat(50, 6, label, "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

func (g *Generator) drawRow(pdf *gofpdf.Fpdf, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(g.fontName, style, 9)
	for i, col := range cols {
		pdf.CellFormat(widths[i], 7, col, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

// titleLine keeps to ASCII: the core Helvetica font expects cp1252, so
// multi-byte glyphs would render as mojibake.
func titleLine(c model.Contract) string {
	return fmt.Sprintf("Contract %s (%s to %s)",
		c.OfficialNumber, formatDate(c.TermStart), formatDate(c.TermEnd))
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
