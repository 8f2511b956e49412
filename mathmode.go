package texnote

import "sort"

// MathModeKaTeX is the KaTeX-compatible dialect Notion renders natively.
// Inline math is intentionally promoted to the $$ wrapping form because
// Notion consumes both inline and display math through the same delimiter.
const MathModeKaTeX = "katex"

// mathDialect holds the delimiters a math mode wraps expressions in.
type mathDialect struct {
	name         string
	inlineOpen   string
	inlineClose  string
	displayOpen  string
	displayClose string
}

var builtinMathModes = map[string]mathDialect{
	MathModeKaTeX: {
		name:         MathModeKaTeX,
		inlineOpen:   "$$",
		inlineClose:  "$$",
		displayOpen:  "$$",
		displayClose: "$$",
	},
}

// AvailableMathModes returns the names of registered math modes.
func AvailableMathModes() []string {
	names := make([]string, 0, len(builtinMathModes))
	for name := range builtinMathModes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func mathModeByName(name string) (mathDialect, bool) {
	d, ok := builtinMathModes[name]
	return d, ok
}
