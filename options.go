package texnote

// Option configures conversion behavior.
type Option func(*config)

// config is resolved once per conversion call and passed by value; no
// mutable configuration state is shared between components or calls.
type config struct {
	mathMode      string
	headingOffset int
	keepComments  bool
}

func defaultConfig() config {
	return config{mathMode: MathModeKaTeX}
}

// WithMathMode selects the math dialect. Only MathModeKaTeX is currently
// registered; unrecognized names fail the conversion with a
// *ConfigurationError before any parsing happens.
func WithMathMode(name string) Option {
	return func(cfg *config) {
		cfg.mathMode = name
	}
}

// WithHeadingOffset shifts every heading level by the given amount, which
// may be negative. The resulting level is clamped to 1..6.
func WithHeadingOffset(offset int) Option {
	return func(cfg *config) {
		cfg.headingOffset = offset
	}
}

// WithComments preserves % comments as literal text at their original
// location instead of dropping them.
func WithComments(preserve bool) Option {
	return func(cfg *config) {
		cfg.keepComments = preserve
	}
}

func resolveOptions(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if _, ok := mathModeByName(cfg.mathMode); !ok {
		return config{}, &ConfigurationError{
			Option: "math_mode",
			Value:  cfg.mathMode,
			Msg:    "unrecognized math mode",
		}
	}
	return cfg, nil
}
