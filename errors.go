package texnote

import "fmt"

// StructuralError reports a construct whose structure cannot be guessed:
// an unmatched environment, an unclosed group, or a link missing a
// required group. It is never silently recovered.
type StructuralError struct {
	Line      int
	Offset    int
	Construct string
	Msg       string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, e.Construct, e.Msg)
}

func structuralErr(tok Token, construct, format string, args ...any) error {
	return &StructuralError{
		Line:      tok.Line,
		Offset:    tok.Offset,
		Construct: construct,
		Msg:       fmt.Sprintf(format, args...),
	}
}

// ConfigurationError reports an unrecognized option value. It is raised
// before any parsing begins.
type ConfigurationError struct {
	Option string
	Value  string
	Msg    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("option %s=%q: %s", e.Option, e.Value, e.Msg)
}
