// Package texnote converts LaTeX source to Notion-flavored Markdown.
//
// The conversion is a single synchronous pass: a scanner lexes the source
// into tokens, a recursive-descent parser builds a document tree from
// nested environments and inline commands, and a renderer serializes the
// tree into text that pastes cleanly into Notion. Math is emitted with
// KaTeX-style $$ delimiters for both inline and display expressions, since
// Notion consumes both through the same delimiter.
//
// Core properties:
//   - Best-effort conversion: unknown commands and malformed escapes
//     degrade to literal text instead of failing
//   - Structural problems (unmatched environments, unclosed groups) are
//     reported as *StructuralError with a source line
//   - No shared state between calls; concurrent conversions are safe
//
// Example:
//
//	out, err := texnote.ConvertString("\\section{Intro}\nSome $x^2$ text.")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out)
//	// # Intro
//	// Some $$x^2$$ text.
//
// Conversion can be customized using Options such as WithHeadingOffset or
// WithComments.
package texnote
