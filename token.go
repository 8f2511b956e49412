package texnote

// Token is a lexical unit produced by the scanner. Payload use depends on
// the kind: literal text for text tokens, the command or environment name
// for command and environment tokens, the delimiter as written for math
// tokens, and the comment body (without the leading %) for comments.
type Token struct {
	Kind    tokenKind
	Payload string
	Line    int
	Offset  int
}

type tokenKind uint8

// TokenKind is the exported alias of tokenKind for tooling and tests.
type TokenKind = tokenKind

const (
	tokenText tokenKind = iota
	tokenCommand
	tokenEnvBegin
	tokenEnvEnd
	tokenMathInline
	tokenMathDisplay
	tokenGroupOpen
	tokenGroupClose
	tokenComment
	tokenBlankLine
	tokenRowSep
	tokenColSep
	tokenEOF
)

const (
	// TokenText represents literal text runs.
	TokenText tokenKind = tokenText
	// TokenCommand represents a backslash command such as \textbf.
	TokenCommand tokenKind = tokenCommand
	// TokenEnvBegin marks \begin{name}.
	TokenEnvBegin tokenKind = tokenEnvBegin
	// TokenEnvEnd marks \end{name}.
	TokenEnvEnd tokenKind = tokenEnvEnd
	// TokenMathInline is an inline math delimiter ($ or \( or \)).
	TokenMathInline tokenKind = tokenMathInline
	// TokenMathDisplay is a display math delimiter ($$ or \[ or \]).
	TokenMathDisplay tokenKind = tokenMathDisplay
	// TokenGroupOpen is an opening brace.
	TokenGroupOpen tokenKind = tokenGroupOpen
	// TokenGroupClose is a closing brace.
	TokenGroupClose tokenKind = tokenGroupClose
	// TokenComment is a % comment, emitted only when comments are preserved.
	TokenComment tokenKind = tokenComment
	// TokenBlankLine is a paragraph boundary (one or more blank lines).
	TokenBlankLine tokenKind = tokenBlankLine
	// TokenRowSep is the \\ row separator.
	TokenRowSep tokenKind = tokenRowSep
	// TokenColSep is the & column separator.
	TokenColSep tokenKind = tokenColSep
	// TokenEOF marks the end of input.
	TokenEOF tokenKind = tokenEOF
)

// mathClose maps an opening math delimiter to the raw text that closes it.
func mathClose(open string) string {
	switch open {
	case "$":
		return "$"
	case "$$":
		return "$$"
	case `\(`:
		return `\)`
	case `\[`:
		return `\]`
	}
	return ""
}
