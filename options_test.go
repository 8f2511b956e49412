package texnote

import (
	"strings"
	"testing"
)

func TestAvailableMathModes(t *testing.T) {
	modes := AvailableMathModes()
	if len(modes) == 0 {
		t.Fatal("no math modes registered")
	}
	found := false
	for _, m := range modes {
		if m == MathModeKaTeX {
			found = true
		}
	}
	if !found {
		t.Fatalf("modes %v missing %q", modes, MathModeKaTeX)
	}
}

func TestResolveOptionsDefaults(t *testing.T) {
	cfg, err := resolveOptions(nil)
	if err != nil {
		t.Fatalf("resolveOptions: %v", err)
	}
	if cfg.mathMode != MathModeKaTeX {
		t.Fatalf("mathMode = %q, want %q", cfg.mathMode, MathModeKaTeX)
	}
	if cfg.headingOffset != 0 || cfg.keepComments {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestResolveOptionsNilOptionIgnored(t *testing.T) {
	if _, err := resolveOptions([]Option{nil, WithHeadingOffset(2)}); err != nil {
		t.Fatalf("resolveOptions with nil option: %v", err)
	}
}

func TestResolveOptionsRejectsUnknownMathMode(t *testing.T) {
	_, err := resolveOptions([]Option{WithMathMode("asciimath")})
	cfgErr, ok := err.(*ConfigurationError)
	if !ok {
		t.Fatalf("err = %v, want *ConfigurationError", err)
	}
	if cfgErr.Option != "math_mode" || cfgErr.Value != "asciimath" {
		t.Fatalf("error fields = %+v", cfgErr)
	}
	if !strings.Contains(cfgErr.Error(), "asciimath") {
		t.Fatalf("error message %q should name the value", cfgErr.Error())
	}
}
