// Package document models a report as an ordered list of blocks and renders
// it to PDF.
package document

import "strings"

type Kind int

const (
	KindHeading1 Kind = iota + 1
	KindHeading2
	KindHeading3
	KindParagraph
	KindPageBreak
)

// Run is a span of text inside a paragraph or heading.
type Run struct {
	Text string
	Bold bool
}

type Block struct {
	Kind Kind
	Runs []Run
}

func (b Block) Text() string {
	var sb strings.Builder
	for _, r := range b.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

type Document struct {
	Title  string
	Blocks []Block
}

func New(title string) *Document {
	return &Document{Title: title}
}

func (d *Document) Heading(level int, text string) {
	kind := KindHeading3
	switch level {
	case 1:
		kind = KindHeading1
	case 2:
		kind = KindHeading2
	}
	d.Blocks = append(d.Blocks, Block{Kind: kind, Runs: []Run{{Text: text, Bold: true}}})
}

func (d *Document) Paragraph(runs ...Run) {
	d.Blocks = append(d.Blocks, Block{Kind: KindParagraph, Runs: runs})
}

func (d *Document) Text(text string) {
	d.Paragraph(Run{Text: text})
}

func (d *Document) PageBreak() {
	d.Blocks = append(d.Blocks, Block{Kind: KindPageBreak})
}

// Lines flattens the document into one string per block. Page breaks are
// rendered as an empty line.
func (d Document) Lines() []string {
	out := make([]string, 0, len(d.Blocks))
	for _, b := range d.Blocks {
		out = append(out, b.Text())
	}
	return out
}

// Has reports whether any block's text equals text.
func (d Document) Has(text string) bool {
	for _, b := range d.Blocks {
		if b.Text() == text {
			return true
		}
	}
	return false
}
