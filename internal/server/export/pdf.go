package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pdfFontSize   = 11
	pdfLineHeight = 5
	pdfSpacing    = 2
)

// renderPDF writes one paragraph per line with a small gap after each.
// Core fonts are cp1252; runes outside it come out as '.'.
func renderPDF(lines []string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Scriptoria", true)
	pdf.SetCreator("Scriptoria", true)
	pdf.SetFont("Helvetica", "", pdfFontSize)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, line := range lines {
		pdf.MultiCell(0, pdfLineHeight, tr(line), "", "L", false)
		pdf.Ln(pdfSpacing)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
