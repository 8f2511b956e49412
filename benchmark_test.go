package texnote

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func BenchmarkConvertString(b *testing.B) {
	src, err := os.ReadFile(filepath.Join("testdata", "sample.tex"))
	if err != nil {
		b.Fatalf("read sample: %v", err)
	}
	input := string(src)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ConvertString(input); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConvertStringLarge(b *testing.B) {
	src, err := os.ReadFile(filepath.Join("testdata", "sample.tex"))
	if err != nil {
		b.Fatalf("read sample: %v", err)
	}
	input := strings.Repeat(string(src)+"\n\n", 50)
	b.ReportAllocs()
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ConvertString(input); err != nil {
			b.Fatal(err)
		}
	}
}
