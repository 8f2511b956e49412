package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadInputFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.tex")
	if err := os.WriteFile(path, []byte(`\section{Hi}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, name, err := readInput([]string{path})
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if name != path {
		t.Fatalf("name = %q, want %q", name, path)
	}
	if string(data) != `\section{Hi}` {
		t.Fatalf("data = %q", data)
	}
}

func TestReadInputMissingFile(t *testing.T) {
	if _, _, err := readInput([]string{filepath.Join(t.TempDir(), "missing.tex")}); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestChooseOutputPrefersFlag(t *testing.T) {
	cases := []struct {
		flag string
		args []string
		want string
	}{
		{"", []string{"in.tex"}, ""},
		{"", []string{"in.tex", "out.md"}, "out.md"},
		{"", []string{"in.tex", "-"}, ""},
		{"flagged.md", []string{"in.tex", "out.md"}, "flagged.md"},
	}
	for _, tc := range cases {
		if got := chooseOutput(tc.flag, tc.args); got != tc.want {
			t.Fatalf("chooseOutput(%q, %v) = %q, want %q", tc.flag, tc.args, got, tc.want)
		}
	}
}

func TestWriteOutputCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.md")
	if err := writeOutput(path, "# Hi"); err != nil {
		t.Fatalf("writeOutput: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "# Hi\n" {
		t.Fatalf("content = %q, want trailing newline", data)
	}
}

func TestNormalizePathIsAbsolute(t *testing.T) {
	got := normalizePath("relative.md")
	if !filepath.IsAbs(got) {
		t.Fatalf("normalizePath returned non-absolute path %q", got)
	}
	if !strings.HasSuffix(got, "relative.md") {
		t.Fatalf("normalizePath lost file name: %q", got)
	}
}

func TestResolveWrapWidthExplicit(t *testing.T) {
	if got := resolveWrapWidth(72); got != 72 {
		t.Fatalf("resolveWrapWidth(72) = %d", got)
	}
}

func TestParseWidth(t *testing.T) {
	if w, err := parseWidth("120"); err != nil || w != 120 {
		t.Fatalf("parseWidth(120) = %d, %v", w, err)
	}
	if _, err := parseWidth("12x"); err == nil {
		t.Fatal("expected error for non-numeric width")
	}
}
