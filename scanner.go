package texnote

import "strings"

// scanner lexes LaTeX source into tokens. Tokens are produced lazily; a
// scanner is single-use and private to one conversion call.
type scanner struct {
	src          string
	pos          int
	line         int
	keepComments bool
}

func newScanner(src string, keepComments bool) *scanner {
	return &scanner{src: src, line: 1, keepComments: keepComments}
}

// escapable characters that \x reduces to a literal x.
const escapable = "&%$#_{}"

func (s *scanner) next() Token {
	for {
		if s.pos >= len(s.src) {
			return Token{Kind: tokenEOF, Line: s.line, Offset: s.pos}
		}
		tok := Token{Line: s.line, Offset: s.pos}
		switch c := s.src[s.pos]; c {
		case '\n':
			if s.scanNewlines() {
				tok.Kind = tokenBlankLine
				return tok
			}
			tok.Kind = tokenText
			tok.Payload = " "
			return tok
		case '\r':
			s.pos++
			continue
		case '%':
			body := s.scanComment()
			if !s.keepComments {
				continue
			}
			tok.Kind = tokenComment
			tok.Payload = body
			return tok
		case '\\':
			return s.scanEscape(tok)
		case '$':
			if s.pos+1 < len(s.src) && s.src[s.pos+1] == '$' {
				s.pos += 2
				tok.Kind = tokenMathDisplay
				tok.Payload = "$$"
				return tok
			}
			s.pos++
			tok.Kind = tokenMathInline
			tok.Payload = "$"
			return tok
		case '{':
			s.pos++
			tok.Kind = tokenGroupOpen
			return tok
		case '}':
			s.pos++
			tok.Kind = tokenGroupClose
			return tok
		case '&':
			s.pos++
			tok.Kind = tokenColSep
			return tok
		default:
			tok.Kind = tokenText
			tok.Payload = s.scanText()
			return tok
		}
	}
}

// scanNewlines consumes a run of newlines and blank lines starting at a
// newline. It reports whether the run forms a paragraph boundary (at least
// one entirely blank line between content).
func (s *scanner) scanNewlines() bool {
	s.pos++
	s.line++
	blank := false
	for s.pos < len(s.src) {
		i := s.pos
		for i < len(s.src) && (s.src[i] == ' ' || s.src[i] == '\t' || s.src[i] == '\r') {
			i++
		}
		if i < len(s.src) && s.src[i] == '\n' {
			s.pos = i + 1
			s.line++
			blank = true
			continue
		}
		break
	}
	return blank
}

// scanComment consumes a % comment and returns its body without the marker
// or the trailing newline.
func (s *scanner) scanComment() string {
	s.pos++
	start := s.pos
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.pos++
	}
	return strings.TrimSuffix(s.src[start:s.pos], "\r")
}

func (s *scanner) scanEscape(tok Token) Token {
	if s.pos+1 >= len(s.src) {
		// Trailing backslash degrades to literal text.
		s.pos++
		tok.Kind = tokenText
		tok.Payload = `\`
		return tok
	}
	switch c := s.src[s.pos+1]; {
	case c == '\\':
		s.pos += 2
		tok.Kind = tokenRowSep
		return tok
	case c == '(' || c == ')':
		s.pos += 2
		tok.Kind = tokenMathInline
		tok.Payload = `\` + string(c)
		return tok
	case c == '[' || c == ']':
		s.pos += 2
		tok.Kind = tokenMathDisplay
		tok.Payload = `\` + string(c)
		return tok
	case isLetter(c):
		name := s.scanCommandName()
		if name == "begin" || name == "end" {
			if env, ok := s.scanEnvName(); ok {
				if name == "begin" {
					tok.Kind = tokenEnvBegin
				} else {
					tok.Kind = tokenEnvEnd
				}
				tok.Payload = env
				return tok
			}
		}
		tok.Kind = tokenCommand
		tok.Payload = name
		return tok
	case strings.IndexByte(escapable, c) >= 0:
		s.pos += 2
		tok.Kind = tokenText
		tok.Payload = string(c)
		return tok
	default:
		// Backslash before anything else degrades to a literal backslash.
		s.pos++
		tok.Kind = tokenText
		tok.Payload = `\`
		return tok
	}
}

func (s *scanner) scanCommandName() string {
	s.pos++
	start := s.pos
	for s.pos < len(s.src) && isLetter(s.src[s.pos]) {
		s.pos++
	}
	return s.src[start:s.pos]
}

// scanEnvName consumes "{name}" after \begin or \end, tolerating spaces
// before the brace. On failure the position is left after the command name
// so the caller can degrade to a plain command token.
func (s *scanner) scanEnvName() (string, bool) {
	i := s.pos
	for i < len(s.src) && (s.src[i] == ' ' || s.src[i] == '\t') {
		i++
	}
	if i >= len(s.src) || s.src[i] != '{' {
		return "", false
	}
	i++
	start := i
	for i < len(s.src) && s.src[i] != '}' && s.src[i] != '\n' {
		i++
	}
	if i >= len(s.src) || s.src[i] != '}' {
		return "", false
	}
	name := strings.TrimSpace(s.src[start:i])
	if name == "" {
		return "", false
	}
	s.pos = i + 1
	return name, true
}

func (s *scanner) scanText() string {
	start := s.pos
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\n', '\r', '%', '\\', '$', '{', '}', '&':
			return s.src[start:s.pos]
		}
		s.pos++
	}
	return s.src[start:s.pos]
}

// rawUntil consumes raw source up to and including the first occurrence of
// term, returning the text before it. Used for math expressions and
// verbatim-like environments where inline recognition is suppressed. It
// must only be called when the parser holds no lookahead token.
func (s *scanner) rawUntil(term string) (string, bool) {
	idx := strings.Index(s.src[s.pos:], term)
	if idx < 0 {
		return "", false
	}
	raw := s.src[s.pos : s.pos+idx]
	s.line += strings.Count(s.src[s.pos:s.pos+idx+len(term)], "\n")
	s.pos += idx + len(term)
	return raw, true
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
