package texnote

import (
	"strconv"
	"strings"
)

const listIndent = "  "

// renderer serializes a document tree into Notion-flavored Markdown. It
// never fails on a structurally valid tree: every block and span variant
// has a defined rendering.
type renderer struct {
	cfg  config
	math mathDialect
}

func newRenderer(cfg config) *renderer {
	math, _ := mathModeByName(cfg.mathMode)
	return &renderer{cfg: cfg, math: math}
}

// render emits one line per Notion block; blocks are joined by single
// newlines because the paste target treats each line as its own block.
func (r *renderer) render(doc *Document) string {
	parts := make([]string, 0, len(doc.Blocks))
	for _, b := range doc.Blocks {
		if s := r.renderBlock(b); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

func (r *renderer) renderBlock(b Block) string {
	switch b := b.(type) {
	case *Heading:
		return strings.Repeat("#", b.Level) + " " + r.renderSpans(b.Spans)
	case *Paragraph:
		return r.renderSpans(b.Spans)
	case *MathBlock:
		return r.math.displayOpen + b.Expr + r.math.displayClose
	case *List:
		return strings.Join(r.renderList(b, 0), "\n")
	case *Table:
		return r.renderTable(b)
	case *CodeBlock:
		return r.renderCodeBlock(b)
	case *Quote:
		return r.renderQuote(b)
	}
	return ""
}

func (r *renderer) renderList(l *List, depth int) []string {
	var lines []string
	indent := strings.Repeat(listIndent, depth)
	for i, item := range l.Items {
		marker := "- "
		if l.Ordered {
			marker = strconv.Itoa(i+1) + ". "
		}
		lines = append(lines, strings.TrimRight(indent+marker+r.renderSpans(item.Spans), " "))
		if item.Nested != nil {
			lines = append(lines, r.renderList(item.Nested, depth+1)...)
		}
	}
	return lines
}

// renderTable pads short rows to the widest row's cell count; the first
// row becomes the header, followed by the markdown separator row.
func (r *renderer) renderTable(t *Table) string {
	maxCols := 0
	for _, row := range t.Rows {
		if len(row.Cells) > maxCols {
			maxCols = len(row.Cells)
		}
	}
	if maxCols == 0 {
		return ""
	}
	var lines []string
	for i, row := range t.Rows {
		cells := make([]string, maxCols)
		for j, cell := range row.Cells {
			cells[j] = strings.ReplaceAll(r.renderSpans(cell), "|", `\|`)
		}
		lines = append(lines, "| "+strings.Join(cells, " | ")+" |")
		if i == 0 {
			sep := make([]string, maxCols)
			for j := range sep {
				sep[j] = "---"
			}
			lines = append(lines, "| "+strings.Join(sep, " | ")+" |")
		}
	}
	return strings.Join(lines, "\n")
}

func (r *renderer) renderCodeBlock(b *CodeBlock) string {
	if b.Text == "" {
		return "```" + b.Lang + "\n```"
	}
	return "```" + b.Lang + "\n" + b.Text + "\n```"
}

func (r *renderer) renderQuote(q *Quote) string {
	parts := make([]string, 0, len(q.Blocks))
	for _, b := range q.Blocks {
		if s := r.renderBlock(b); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	lines := strings.Split(strings.Join(parts, "\n"), "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = ">"
		} else {
			lines[i] = "> " + line
		}
	}
	return strings.Join(lines, "\n")
}

func (r *renderer) renderSpans(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		switch s := s.(type) {
		case *Text:
			b.WriteString(s.Value)
		case *Bold:
			b.WriteString("**")
			b.WriteString(r.renderSpans(s.Spans))
			b.WriteString("**")
		case *Italic:
			b.WriteString("*")
			b.WriteString(r.renderSpans(s.Spans))
			b.WriteString("*")
		case *Code:
			b.WriteString("`")
			b.WriteString(r.renderSpans(s.Spans))
			b.WriteString("`")
		case *MathInline:
			b.WriteString(r.math.inlineOpen)
			b.WriteString(s.Expr)
			b.WriteString(r.math.inlineClose)
		case *Link:
			b.WriteString("[")
			b.WriteString(r.renderSpans(s.Spans))
			b.WriteString("](")
			b.WriteString(s.URL)
			b.WriteString(")")
		}
	}
	return b.String()
}
