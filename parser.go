package texnote

import "strings"

const maxHeadingLevel = 6

// parser consumes the token stream via recursive descent and builds the
// document tree. Lookahead is a single token; raw captures (math,
// verbatim) go straight to the scanner and are only issued when the
// lookahead slot is empty.
type parser struct {
	s        *scanner
	cfg      config
	tok      Token
	havePeek bool
}

func newParser(s *scanner, cfg config) *parser {
	return &parser{s: s, cfg: cfg}
}

func (p *parser) peek() Token {
	if !p.havePeek {
		p.tok = p.s.next()
		p.havePeek = true
	}
	return p.tok
}

func (p *parser) next() Token {
	if p.havePeek {
		p.havePeek = false
		return p.tok
	}
	return p.s.next()
}

func (p *parser) parseDocument() (*Document, error) {
	blocks, err := p.parseBlocks("", Token{Line: 1})
	if err != nil {
		return nil, err
	}
	return &Document{Blocks: blocks}, nil
}

// parseBlocks recognizes blocks until EOF, or until \end{stopEnv} when
// stopEnv is set. begin is the opening token of the enclosing
// environment, used for unmatched-environment diagnostics.
func (p *parser) parseBlocks(stopEnv string, begin Token) ([]Block, error) {
	var blocks []Block
	for {
		t := p.peek()
		switch t.Kind {
		case tokenEOF:
			if stopEnv != "" {
				return nil, structuralErr(begin, "environment", `\begin{%s} has no matching \end`, stopEnv)
			}
			return blocks, nil
		case tokenBlankLine:
			p.next()
		case tokenText:
			if strings.TrimSpace(t.Payload) == "" {
				p.next()
				continue
			}
			if err := p.appendParagraph(&blocks, nil); err != nil {
				return nil, err
			}
		case tokenEnvEnd:
			if stopEnv != "" && t.Payload == stopEnv {
				p.next()
				return blocks, nil
			}
			return nil, structuralErr(t, "environment", `unexpected \end{%s}`, t.Payload)
		case tokenEnvBegin:
			p.next()
			bs, err := p.parseEnvironment(t)
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, bs...)
		case tokenCommand:
			if level := headingLevel(t.Payload); level > 0 {
				p.next()
				b, err := p.parseHeading(t, level)
				if err != nil {
					return nil, err
				}
				if b != nil {
					blocks = append(blocks, b)
				}
				continue
			}
			if err := p.appendParagraph(&blocks, nil); err != nil {
				return nil, err
			}
		case tokenMathDisplay:
			p.next()
			if close := mathClose(t.Payload); close != "" {
				if raw, ok := p.s.rawUntil(close); ok {
					blocks = append(blocks, &MathBlock{Expr: strings.TrimSpace(raw)})
					continue
				}
			}
			// Unmatched display delimiter degrades to paragraph text.
			if err := p.appendParagraph(&blocks, []Span{&Text{Value: t.Payload}}); err != nil {
				return nil, err
			}
		default:
			if err := p.appendParagraph(&blocks, nil); err != nil {
				return nil, err
			}
		}
	}
}

func (p *parser) appendParagraph(blocks *[]Block, prefix []Span) error {
	spans, err := p.parseInline(inlinePara, "", p.peek())
	if err != nil {
		return err
	}
	spans = tidySpans(append(prefix, spans...))
	if len(spans) > 0 {
		*blocks = append(*blocks, &Paragraph{Spans: spans})
	}
	return nil
}

func (p *parser) parseHeading(cmd Token, level int) (Block, error) {
	spans, stash, ok, err := p.commandGroup(cmd)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Heading command without a brace group degrades to literal text.
		prefix := []Span{&Text{Value: `\` + cmd.Payload}}
		if stash != "" {
			prefix = append(prefix, &Text{Value: stash})
		}
		var blocks []Block
		if err := p.appendParagraph(&blocks, prefix); err != nil {
			return nil, err
		}
		if len(blocks) == 0 {
			return nil, nil
		}
		return blocks[0], nil
	}
	return &Heading{Level: clampLevel(level + p.cfg.headingOffset), Spans: spans}, nil
}

func (p *parser) parseEnvironment(begin Token) ([]Block, error) {
	switch begin.Payload {
	case "itemize", "enumerate":
		l, err := p.parseList(begin, begin.Payload == "enumerate")
		if err != nil {
			return nil, err
		}
		return []Block{l}, nil
	case "quote", "quotation":
		blocks, err := p.parseBlocks(begin.Payload, begin)
		if err != nil {
			return nil, err
		}
		return []Block{&Quote{Blocks: blocks}}, nil
	case "verbatim", "lstlisting":
		cb, err := p.parseCodeEnv(begin)
		if err != nil {
			return nil, err
		}
		return []Block{cb}, nil
	case "table":
		return p.parseTableWrapper(begin)
	case "tabular":
		tbl, err := p.parseTabular(begin)
		if err != nil {
			return nil, err
		}
		return []Block{tbl}, nil
	default:
		// Unknown environments degrade to their contents; the matching
		// \end is still required.
		return p.parseBlocks(begin.Payload, begin)
	}
}

// parseCodeEnv captures a verbatim-like environment raw, with inline
// recognition suppressed. lstlisting may carry a [language=...] option.
func (p *parser) parseCodeEnv(begin Token) (*CodeBlock, error) {
	raw, ok := p.s.rawUntil(`\end{` + begin.Payload + `}`)
	if !ok {
		return nil, structuralErr(begin, "environment", `\begin{%s} has no matching \end`, begin.Payload)
	}
	lang := ""
	if begin.Payload == "lstlisting" {
		lang, raw = splitListingOptions(raw)
	}
	text := strings.TrimRight(strings.TrimLeft(raw, "\n"), " \t\n")
	return &CodeBlock{Text: text, Lang: lang}, nil
}

func splitListingOptions(raw string) (lang, rest string) {
	rest = raw
	trimmed := strings.TrimLeft(raw, " \t")
	if !strings.HasPrefix(trimmed, "[") {
		return "", raw
	}
	end := strings.IndexByte(trimmed, ']')
	if end < 0 {
		return "", raw
	}
	for _, opt := range strings.Split(trimmed[1:end], ",") {
		key, value, found := strings.Cut(opt, "=")
		if found && strings.TrimSpace(key) == "language" {
			lang = strings.ToLower(strings.TrimSpace(value))
		}
	}
	return lang, trimmed[end+1:]
}

func (p *parser) parseList(begin Token, ordered bool) (*List, error) {
	list := &List{Ordered: ordered}
	for {
		t := p.peek()
		switch t.Kind {
		case tokenEOF:
			return nil, structuralErr(begin, "environment", `\begin{%s} has no matching \end`, begin.Payload)
		case tokenEnvEnd:
			if t.Payload == begin.Payload {
				p.next()
				return list, nil
			}
			return nil, structuralErr(t, "environment", `unexpected \end{%s} inside %s`, t.Payload, begin.Payload)
		case tokenCommand:
			if t.Payload == "item" {
				p.next()
				item, err := p.parseItem(begin)
				if err != nil {
					return nil, err
				}
				list.Items = append(list.Items, item)
				continue
			}
			p.next()
		case tokenEnvBegin:
			// An environment before the first \item has no item to attach
			// to; parse it to keep begin/end balanced and drop the result.
			p.next()
			if _, err := p.parseEnvironment(t); err != nil {
				return nil, err
			}
		default:
			p.next()
		}
	}
}

// parseItem collects one item's content up to the next \item or the
// enclosing \end: inline spans, nested list environments, and any inline
// content that follows a nested list, all belong to this item.
func (p *parser) parseItem(listBegin Token) (Item, error) {
	var spans []Span
	var nested *List
	for {
		part, err := p.parseInline(inlineItem, "", listBegin)
		if err != nil {
			return Item{}, err
		}
		spans = append(spans, part...)
		t := p.peek()
		if t.Kind != tokenEnvBegin {
			break
		}
		p.next()
		if isListEnv(t.Payload) {
			inner, err := p.parseList(t, t.Payload == "enumerate")
			if err != nil {
				return Item{}, err
			}
			if nested == nil {
				nested = inner
			} else {
				nested.Items = append(nested.Items, inner.Items...)
			}
			continue
		}
		// Non-list environments inside an item degrade to inline content.
		inner, err := p.parseInlineEnv(t)
		if err != nil {
			return Item{}, err
		}
		spans = append(spans, inner...)
	}
	return Item{Spans: tidySpans(spans), Nested: nested}, nil
}

// parseTableWrapper handles the table environment: everything except the
// inner tabular (captions, centering, placement options) is dropped.
func (p *parser) parseTableWrapper(begin Token) ([]Block, error) {
	var blocks []Block
	for {
		t := p.peek()
		switch t.Kind {
		case tokenEOF:
			return nil, structuralErr(begin, "environment", `\begin{table} has no matching \end`)
		case tokenEnvEnd:
			if t.Payload == begin.Payload {
				p.next()
				return blocks, nil
			}
			return nil, structuralErr(t, "environment", `unexpected \end{%s} inside table`, t.Payload)
		case tokenEnvBegin:
			p.next()
			bs, err := p.parseEnvironment(t)
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, bs...)
		case tokenCommand:
			p.next()
			if t.Payload == "caption" || t.Payload == "label" {
				if _, _, _, err := p.commandGroup(t); err != nil {
					return nil, err
				}
			}
		default:
			p.next()
		}
	}
}

func (p *parser) parseTabular(begin Token) (*Table, error) {
	// The first group after \begin{tabular} is the column spec; consume
	// and ignore it.
	if t := p.peek(); t.Kind == tokenGroupOpen {
		p.next()
		if _, err := p.parseInline(inlineGroup, "", t); err != nil {
			return nil, err
		}
	}
	table := &Table{}
	var row Row
	for {
		spans, err := p.parseInline(inlineCell, "", begin)
		if err != nil {
			return nil, err
		}
		cell := tidySpans(spans)
		t := p.peek()
		switch t.Kind {
		case tokenColSep:
			p.next()
			row.Cells = append(row.Cells, cell)
		case tokenRowSep:
			p.next()
			row.Cells = append(row.Cells, cell)
			if !rowEmpty(row) {
				table.Rows = append(table.Rows, row)
			}
			row = Row{}
		case tokenEnvEnd:
			if t.Payload != begin.Payload {
				return nil, structuralErr(t, "environment", `unexpected \end{%s} inside tabular`, t.Payload)
			}
			p.next()
			if len(cell) > 0 || len(row.Cells) > 0 {
				row.Cells = append(row.Cells, cell)
				if !rowEmpty(row) {
					table.Rows = append(table.Rows, row)
				}
			}
			return table, nil
		case tokenEOF:
			return nil, structuralErr(begin, "environment", `\begin{tabular} has no matching \end`)
		}
	}
}

func rowEmpty(row Row) bool {
	for _, cell := range row.Cells {
		if len(cell) > 0 {
			return false
		}
	}
	return true
}

type inlineMode uint8

const (
	inlinePara inlineMode = iota
	inlineGroup
	inlineItem
	inlineCell
	inlineEnv
)

// parseInline is the inline-span sub-grammar, invoked wherever inline
// content is expected. The mode decides which tokens terminate the span
// sequence: groupClose for brace groups, \item and list environments for
// items, the separators for table cells, blank lines and block-starting
// constructs for paragraphs, and \end{stopEnv} when splicing an
// environment's contents inline. Terminating tokens are left for the
// caller except where noted.
func (p *parser) parseInline(mode inlineMode, stopEnv string, open Token) ([]Span, error) {
	var spans []Span
	for {
		t := p.peek()
		switch t.Kind {
		case tokenEOF:
			if mode == inlineGroup {
				return nil, structuralErr(open, "group", "unclosed { group")
			}
			if mode == inlineEnv {
				return nil, structuralErr(open, "environment", `\begin{%s} has no matching \end`, stopEnv)
			}
			return spans, nil
		case tokenBlankLine:
			if mode == inlinePara {
				p.next()
				return spans, nil
			}
			p.next()
			spans = append(spans, &Text{Value: " "})
		case tokenText:
			p.next()
			spans = append(spans, &Text{Value: t.Payload})
		case tokenComment:
			p.next()
			spans = append(spans, &Text{Value: "%" + t.Payload})
		case tokenRowSep:
			if mode == inlineCell {
				return spans, nil
			}
			p.next()
			spans = append(spans, &Text{Value: " "})
		case tokenColSep:
			if mode == inlineCell {
				return spans, nil
			}
			p.next()
			spans = append(spans, &Text{Value: "&"})
		case tokenGroupOpen:
			p.next()
			inner, err := p.parseInline(inlineGroup, "", t)
			if err != nil {
				return nil, err
			}
			spans = append(spans, inner...)
		case tokenGroupClose:
			p.next()
			if mode == inlineGroup {
				return spans, nil
			}
			spans = append(spans, &Text{Value: "}"})
		case tokenMathInline, tokenMathDisplay:
			p.next()
			if close := mathClose(t.Payload); close != "" {
				if raw, ok := p.s.rawUntil(close); ok {
					spans = append(spans, &MathInline{Expr: strings.TrimSpace(raw)})
					continue
				}
			}
			spans = append(spans, &Text{Value: t.Payload})
		case tokenEnvBegin:
			switch mode {
			case inlinePara, inlineItem:
				return spans, nil
			default:
				p.next()
				inner, err := p.parseInlineEnv(t)
				if err != nil {
					return nil, err
				}
				spans = append(spans, inner...)
			}
		case tokenEnvEnd:
			switch {
			case mode == inlineEnv && t.Payload == stopEnv:
				p.next()
				return spans, nil
			case mode == inlineGroup:
				return nil, structuralErr(open, "group", "unclosed { group")
			case mode == inlineEnv:
				return nil, structuralErr(t, "environment", `unexpected \end{%s} inside %s`, t.Payload, stopEnv)
			default:
				return spans, nil
			}
		case tokenCommand:
			done, err := p.parseInlineCommand(&spans, mode, t)
			if err != nil {
				return nil, err
			}
			if done {
				return spans, nil
			}
		}
	}
}

// parseInlineCommand handles one command token inside inline content. It
// reports true when the command terminates the current inline sequence
// (left unconsumed for the caller).
func (p *parser) parseInlineCommand(spans *[]Span, mode inlineMode, t Token) (bool, error) {
	switch name := t.Payload; {
	case name == "textbf" || name == "textit" || name == "texttt":
		p.next()
		inner, stash, ok, err := p.commandGroup(t)
		if err != nil {
			return false, err
		}
		if !ok {
			p.appendLiteral(spans, name, stash)
			return false, nil
		}
		switch name {
		case "textbf":
			*spans = append(*spans, &Bold{Spans: inner})
		case "textit":
			*spans = append(*spans, &Italic{Spans: inner})
		case "texttt":
			*spans = append(*spans, &Code{Spans: inner})
		}
	case name == "href":
		p.next()
		url, stash, ok, err := p.rawGroup()
		if err != nil {
			return false, err
		}
		if !ok {
			p.appendLiteral(spans, name, stash)
			return false, nil
		}
		text, _, ok, err := p.commandGroup(t)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, structuralErr(t, "link", `\href is missing its display-text group`)
		}
		*spans = append(*spans, &Link{URL: strings.TrimSpace(url), Spans: text})
	case name == "item":
		if mode == inlineItem {
			return true, nil
		}
		p.next()
		*spans = append(*spans, &Text{Value: `\item`})
	case name == "hline" && mode == inlineCell:
		p.next()
	case headingLevel(name) > 0 && mode == inlinePara:
		return true, nil
	default:
		// Unsupported commands degrade to their literal source text.
		p.next()
		*spans = append(*spans, &Text{Value: `\` + name})
	}
	return false, nil
}

func (p *parser) appendLiteral(spans *[]Span, name, stash string) {
	*spans = append(*spans, &Text{Value: `\` + name})
	if stash != "" {
		*spans = append(*spans, &Text{Value: stash})
	}
}

// parseInlineEnv splices an environment's contents into the surrounding
// inline sequence. Verbatim-like environments become monospace spans.
func (p *parser) parseInlineEnv(begin Token) ([]Span, error) {
	if begin.Payload == "verbatim" || begin.Payload == "lstlisting" {
		cb, err := p.parseCodeEnv(begin)
		if err != nil {
			return nil, err
		}
		return []Span{&Code{Spans: []Span{&Text{Value: cb.Text}}}}, nil
	}
	return p.parseInline(inlineEnv, begin.Payload, begin)
}

// commandGroup consumes one brace-delimited argument group and parses its
// contents as inline spans. When no group follows, it reports ok=false and
// returns any whitespace it skipped so the caller can restore it.
func (p *parser) commandGroup(cmd Token) (inner []Span, stash string, ok bool, err error) {
	stash = p.skipInlineSpace()
	t := p.peek()
	if t.Kind != tokenGroupOpen {
		return nil, stash, false, nil
	}
	p.next()
	spans, err := p.parseInline(inlineGroup, "", t)
	if err != nil {
		return nil, "", false, err
	}
	return tidySpans(spans), "", true, nil
}

// rawGroup consumes one brace-delimited group raw, without inline
// recognition. Used for \href URLs.
func (p *parser) rawGroup() (raw, stash string, ok bool, err error) {
	stash = p.skipInlineSpace()
	t := p.peek()
	if t.Kind != tokenGroupOpen {
		return "", stash, false, nil
	}
	p.next()
	raw, found := p.s.rawUntil("}")
	if !found {
		return "", "", false, structuralErr(t, "group", "unclosed { group")
	}
	return raw, "", true, nil
}

func (p *parser) skipInlineSpace() string {
	var b strings.Builder
	for {
		t := p.peek()
		if t.Kind != tokenText || strings.TrimSpace(t.Payload) != "" {
			return b.String()
		}
		p.next()
		b.WriteString(t.Payload)
	}
}

// tidySpans merges adjacent text spans, collapses whitespace runs, and
// trims the sequence boundaries. Non-text spans and their interior are
// left untouched.
func tidySpans(spans []Span) []Span {
	var out []Span
	for _, s := range spans {
		t, ok := s.(*Text)
		if !ok {
			out = append(out, s)
			continue
		}
		v := collapseSpaces(t.Value)
		if len(out) > 0 {
			if prev, ok := out[len(out)-1].(*Text); ok {
				prev.Value = collapseSpaces(prev.Value + v)
				continue
			}
		}
		out = append(out, &Text{Value: v})
	}
	if len(out) > 0 {
		if first, ok := out[0].(*Text); ok {
			first.Value = strings.TrimLeft(first.Value, " ")
			if first.Value == "" && len(out) > 1 {
				out = out[1:]
			}
		}
	}
	if len(out) > 0 {
		if last, ok := out[len(out)-1].(*Text); ok {
			last.Value = strings.TrimRight(last.Value, " ")
			if last.Value == "" {
				out = out[:len(out)-1]
			}
		}
	}
	return out
}

func collapseSpaces(s string) string {
	if !strings.Contains(s, "  ") && !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' {
			space = true
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteByte(c)
	}
	if space {
		b.WriteByte(' ')
	}
	return b.String()
}

func headingLevel(name string) int {
	switch name {
	case "section":
		return 1
	case "subsection":
		return 2
	case "subsubsection":
		return 3
	}
	return 0
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > maxHeadingLevel {
		return maxHeadingLevel
	}
	return level
}

func isListEnv(name string) bool {
	return name == "itemize" || name == "enumerate"
}
