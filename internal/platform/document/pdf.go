package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

type blockStyle struct {
	size       float64
	lineHeight float64
	before     float64
	after      float64
}

var styles = map[Kind]blockStyle{
	KindHeading1:  {size: 18, lineHeight: 9, before: 0, after: 4},
	KindHeading2:  {size: 14, lineHeight: 7, before: 4, after: 2},
	KindHeading3:  {size: 12, lineHeight: 6, before: 2, after: 1},
	KindParagraph: {size: 11, lineHeight: 5.5, before: 0, after: 2},
}

// RenderPDF lays the blocks out top to bottom on A4 pages.
func RenderPDF(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if doc.Title != "" {
		pdf.SetTitle(doc.Title, true)
	}
	pdf.AddPage()

	for i, block := range doc.Blocks {
		if block.Kind == KindPageBreak {
			pdf.AddPage()
			continue
		}
		style, ok := styles[block.Kind]
		if !ok {
			return nil, fmt.Errorf("block %d: unknown kind %d", i, block.Kind)
		}
		if style.before > 0 {
			pdf.Ln(style.before)
		}
		for _, run := range block.Runs {
			fontStyle := ""
			if run.Bold {
				fontStyle = "B"
			}
			pdf.SetFont("Helvetica", fontStyle, style.size)
			pdf.Write(style.lineHeight, tr(normalize(run.Text)))
		}
		pdf.Ln(style.lineHeight + style.after)
	}

	if err := pdf.Error(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// normalize drops carriage returns; Write already breaks on newlines.
func normalize(text string) string {
	return strings.ReplaceAll(text, "\r", "")
}
