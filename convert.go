package texnote

import (
	"errors"
	"io"
	"strings"
)

// ConvertRequest carries the input, output, and options of one conversion.
type ConvertRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Options []Option
}

// Convert reads LaTeX source from the request's Reader, converts it, and
// writes the Markdown result to the Writer with a trailing newline. The
// whole input is read before conversion begins; partial documents are not
// supported.
func Convert(req ConvertRequest) error {
	if req.Reader == nil || req.Writer == nil {
		return errors.New("texnote: reader and writer are required")
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return err
	}
	out, err := ConvertString(string(src), req.Options...)
	if err != nil {
		return err
	}
	if out != "" {
		out += "\n"
	}
	_, err = io.WriteString(req.Writer, out)
	return err
}

// ConvertString converts LaTeX source to Notion-flavored Markdown.
//
// Options are resolved once at the start of the call and passed by value
// into the scanner, parser, and renderer; no state is shared across calls,
// so concurrent conversions on independent inputs are safe.
func ConvertString(src string, opts ...Option) (string, error) {
	cfg, err := resolveOptions(opts)
	if err != nil {
		return "", err
	}
	if err := ValidateInput([]byte(src)); err != nil {
		return "", err
	}
	src = normalizeNewlines(src)
	p := newParser(newScanner(src, cfg.keepComments), cfg)
	doc, err := p.parseDocument()
	if err != nil {
		return "", err
	}
	return newRenderer(cfg).render(doc), nil
}

func normalizeNewlines(s string) string {
	if strings.Contains(s, "\r") {
		return strings.ReplaceAll(s, "\r\n", "\n")
	}
	return s
}
