package export

import (
	"bytes"
	"fmt"

	"github.com/fumiama/go-docx"
)

// renderDOCX writes one paragraph per line. Leading and trailing spaces of
// a line are kept.
func renderDOCX(lines []string) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()
	for _, line := range lines {
		run := doc.AddParagraph().AddText(line)
		for _, c := range run.Children {
			if t, ok := c.(*docx.Text); ok {
				t.XMLSpace = "preserve"
			}
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write docx: %w", err)
	}
	return buf.Bytes(), nil
}
