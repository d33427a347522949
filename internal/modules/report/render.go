// Package report renders thesis narratives to PDF and serves persisted
// reports for download.
package report

import (
	"bytes"

	"github.com/go-pdf/fpdf"
)

const reportTitle = "Investment Thesis Report"

// Render produces the thesis PDF fully in memory; the returned bytes are the
// complete document. Layout is deterministic for a given thesis.
func Render(thesis string) ([]byte, error) {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.AddPage()
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "B", 25)
	doc.CellFormat(0, 30, tr(reportTitle), "", 1, "C", false, 0, "")
	doc.Ln(14)

	doc.SetFont("Helvetica", "", 16)
	doc.MultiCell(0, 20, tr(thesis), "", "L", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
