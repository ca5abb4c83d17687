// Package export renders generated text into downloadable documents.
// Renderers receive the text as lines and do not interpret it.
package export

import (
	"fmt"
	"strings"
	"time"
)

// Format names a supported export format and doubles as its file extension.
type Format string

const (
	FormatTXT  Format = "txt"
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// Formats lists the export formats in display order.
var Formats = []Format{FormatTXT, FormatPDF, FormatDOCX}

// ParseFormat accepts a format name in any case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatTXT, FormatPDF, FormatDOCX:
		return f, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// ContentType returns the MIME type served with the format.
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "text/plain; charset=utf-8"
	}
}

// FileName builds scriptoria_YYYYMMDD_HHMM.<ext> from the generation time.
func FileName(t time.Time, f Format) string {
	return fmt.Sprintf("scriptoria_%s.%s", t.Format("20060102_1504"), f)
}

// Lines splits content on newlines, dropping carriage returns.
func Lines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.Split(content, "\n")
}

// Render produces the document bytes for lines in format f.
func Render(f Format, lines []string) ([]byte, error) {
	switch f {
	case FormatTXT:
		return []byte(strings.Join(lines, "\n")), nil
	case FormatPDF:
		return renderPDF(lines)
	case FormatDOCX:
		return renderDOCX(lines)
	}
	return nil, fmt.Errorf("unsupported export format %q", f)
}
