package reportservice

import (
	"bytes"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

type pdfRenderer struct{}

func (pdfRenderer) ContentType() string { return "application/pdf" }

func (pdfRenderer) Extension() string { return "pdf" }

func (pdfRenderer) Render(doc Document) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(doc.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr("Organization: "+doc.Organization), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Generated: "+doc.generatedAtLabel()), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, tr(doc.Narrative), "", "L", false)
	pdf.Ln(4)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right

	for _, section := range doc.Sections {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, tr(section.Heading), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		for _, kv := range section.KeyValues {
			pdf.CellFormat(60, 6, tr(kv.Key), "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 6, tr(kv.Value), "", 1, "L", false, 0, "")
		}

		if t := section.Table; t != nil && len(t.Columns) > 0 {
			width := usable / float64(len(t.Columns))
			pdf.SetFont("Helvetica", "B", 9)
			pdf.SetFillColor(230, 230, 230)
			for _, col := range t.Columns {
				pdf.CellFormat(width, 7, tr(col), "1", 0, "L", true, 0, "")
			}
			pdf.Ln(-1)

			pdf.SetFont("Helvetica", "", 9)
			for _, row := range t.Rows {
				for i := range t.Columns {
					cell := ""
					if i < len(row) {
						cell = row[i]
					}
					pdf.CellFormat(width, 6, tr(cell), "1", 0, "L", false, 0, "")
				}
				pdf.Ln(-1)
			}
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to render pdf")
	}
	return buf.Bytes(), nil
}
