package texnote

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// TestGoldenSample converts the sample document and compares the result
// byte for byte against the committed golden output.
func TestGoldenSample(t *testing.T) {
	src, err := os.ReadFile(filepath.Join("testdata", "sample.tex"))
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	want, err := os.ReadFile(filepath.Join("testdata", "sample.golden.md"))
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}

	var out bytes.Buffer
	if err := Convert(ConvertRequest{Reader: bytes.NewReader(src), Writer: &out}); err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !bytes.Equal(out.Bytes(), want) {
		t.Fatalf("golden mismatch\ngot:\n%s\nwant:\n%s", out.Bytes(), want)
	}
}
