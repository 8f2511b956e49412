package texnote

// The document tree is an ordered sequence of blocks owned by the Document
// root. Blocks and spans are immutable once the parser returns; the
// renderer only traverses them.

// Document is the parsed representation of a LaTeX source.
type Document struct {
	Blocks []Block
}

// Block is a block-level node: heading, paragraph, math block, list,
// table, code block or quote.
type Block interface{ block() }

// Span is an inline node embeddable within block content. Spans nest
// arbitrarily: bold may contain italic may contain math.
type Span interface{ span() }

// Heading is a section heading. Level is already offset-adjusted and
// clamped to 1..6 by the parser.
type Heading struct {
	Level int
	Spans []Span
}

// Paragraph is a run of inline content between blank lines.
type Paragraph struct {
	Spans []Span
}

// MathBlock is a display math expression, stored raw.
type MathBlock struct {
	Expr string
}

// List is an itemize or enumerate environment.
type List struct {
	Ordered bool
	Items   []Item
}

// Item is a single list item. Nested holds an inner list opened inside
// this item, if any.
type Item struct {
	Spans  []Span
	Nested *List
}

// Table is a tabular environment. Rows preserve source order.
type Table struct {
	Rows []Row
}

// Row is one table row; cell order is preserved.
type Row struct {
	Cells [][]Span
}

// CodeBlock is a verbatim or lstlisting environment, captured raw.
type CodeBlock struct {
	Text string
	Lang string
}

// Quote is a quote environment containing nested blocks.
type Quote struct {
	Blocks []Block
}

func (*Heading) block()   {}
func (*Paragraph) block() {}
func (*MathBlock) block() {}
func (*List) block()      {}
func (*Table) block()     {}
func (*CodeBlock) block() {}
func (*Quote) block()     {}

// Text is a literal text span.
type Text struct {
	Value string
}

// Bold wraps nested spans in strong emphasis.
type Bold struct {
	Spans []Span
}

// Italic wraps nested spans in emphasis.
type Italic struct {
	Spans []Span
}

// Code wraps nested spans in monospace.
type Code struct {
	Spans []Span
}

// MathInline is an inline math expression, stored raw.
type MathInline struct {
	Expr string
}

// Link is a hyperlink with nested display spans.
type Link struct {
	URL   string
	Spans []Span
}

func (*Text) span()       {}
func (*Bold) span()       {}
func (*Italic) span()     {}
func (*Code) span()       {}
func (*MathInline) span() {}
func (*Link) span()       {}
