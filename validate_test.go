package texnote

import (
	"bytes"
	"errors"
	"testing"
)

func TestValidateInputAcceptsLaTeX(t *testing.T) {
	src := []byte("\\section{Héllo}\n\tindented $x$\n% comment\n")
	if err := ValidateInput(src); err != nil {
		t.Fatalf("ValidateInput: %v", err)
	}
}

func TestValidateInputInvalidUTF8(t *testing.T) {
	if err := ValidateInput([]byte{0x80, 0x81}); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("err = %v, want ErrInvalidUTF8", err)
	}
}

func TestValidateInputNULByte(t *testing.T) {
	if err := ValidateInput([]byte("ab\x00cd")); !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("err = %v, want ErrBinaryInput", err)
	}
}

func TestValidateInputControlHeavy(t *testing.T) {
	// Enough control bytes in a large enough sample to trip the heuristic.
	src := append(bytes.Repeat([]byte("a"), 90), bytes.Repeat([]byte{0x01}, 10)...)
	if err := ValidateInput(src); !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("err = %v, want ErrBinaryInput", err)
	}
}

func TestValidateInputSmallSampleNotBinary(t *testing.T) {
	// Below the sample threshold the control-byte heuristic stays off.
	if err := ValidateInput([]byte("a\x01b")); err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
}
