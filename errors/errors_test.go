package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name:     "unsupported byte",
			err:      Unsupported('!'),
			contains: []string{"[encode]", "unsupported", "unable to encode value", "'!'"},
		},
		{
			name:     "invalid code",
			err:      InvalidCode("..--.."),
			contains: []string{"[decode]", "invalid_code", "unable to decode sequence", `"..--.."`},
		},
		{
			name:     "empty code is quoted",
			err:      InvalidCode(""),
			contains: []string{`sequence ""`},
		},
		{
			name:     "positioned",
			err:      InvalidCode("x").At(4),
			contains: []string{"invalid_code at 4:", `"x"`},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:    PhaseConfig,
				Kind:     KindInvalidData,
				Detail:   "parse morse.hcl",
				Cause:    errors.New("underlying error"),
				Position: NoPosition,
			},
			contains: []string{"[config]", "invalid_data", "parse morse.hcl", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_NoPositionOmitted(t *testing.T) {
	msg := Unsupported('#').Error()
	if strings.Contains(msg, " at ") {
		t.Errorf("unpositioned error should not report a position: %q", msg)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(PhaseInput, KindInvalidInput, cause, "read stdin")

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := InvalidCode("......").At(2)

	if !errors.Is(err, ErrInvalidCode) {
		t.Error("errors.Is should match ErrInvalidCode")
	}
	if errors.Is(err, ErrUnsupported) {
		t.Error("errors.Is should not match ErrUnsupported")
	}

	if !errors.Is(Unsupported('?'), ErrUnsupported) {
		t.Error("errors.Is should match ErrUnsupported")
	}

	// Same kind, different phase
	if err.Is(&Error{Phase: PhaseEncode, Kind: KindInvalidCode}) {
		t.Error("Is should not match different phase")
	}
}

func TestError_As(t *testing.T) {
	var wrapped error = Unsupported('%').At(7)

	var e *Error
	if !errors.As(wrapped, &e) {
		t.Fatal("errors.As failed")
	}
	c, ok := e.Byte()
	if !ok || c != '%' {
		t.Errorf("Byte() = %q, %v; want '%%', true", c, ok)
	}
	if e.Position != 7 {
		t.Errorf("Position = %d, want 7", e.Position)
	}
}

func TestError_AtCopies(t *testing.T) {
	base := InvalidCode("-.-.-.")
	moved := base.At(9)

	if base.Position != NoPosition {
		t.Errorf("At mutated the receiver: Position = %d", base.Position)
	}
	if moved.Position != 9 || moved.Token != base.Token {
		t.Errorf("At = %+v", moved)
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseDecode, KindInvalidCode).
		Token(".-.-.-").
		Position(3).
		Value(6).
		Cause(cause).
		Detail("expected at most %d marks, got %d", 5, 6).
		Build()

	if err.Phase != PhaseDecode {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseDecode)
	}
	if err.Kind != KindInvalidCode {
		t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidCode)
	}
	if err.Token != ".-.-.-" {
		t.Errorf("Token = %q, want '.-.-.-'", err.Token)
	}
	if err.Position != 3 {
		t.Errorf("Position = %d, want 3", err.Position)
	}
	if err.Value != 6 {
		t.Errorf("Value = %v, want 6", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected at most 5 marks, got 6" {
		t.Errorf("Detail = %v, want 'expected at most 5 marks, got 6'", err.Detail)
	}
}

func TestBuilder_DefaultPosition(t *testing.T) {
	err := New(PhaseEncode, KindUnsupported).Build()
	if err.Position != NoPosition {
		t.Errorf("Position = %d, want NoPosition", err.Position)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported('!')
		if err.Phase != PhaseEncode || err.Kind != KindUnsupported {
			t.Errorf("Phase=%v Kind=%v", err.Phase, err.Kind)
		}
		if err.Value != byte('!') {
			t.Errorf("Value = %v, want '!'", err.Value)
		}
	})

	t.Run("InvalidCode", func(t *testing.T) {
		err := InvalidCode("x")
		if err.Phase != PhaseDecode || err.Kind != KindInvalidCode {
			t.Errorf("Phase=%v Kind=%v", err.Phase, err.Kind)
		}
		if err.Token != "x" {
			t.Errorf("Token = %q, want 'x'", err.Token)
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		err := InvalidInput(PhaseInput, "missing mode")
		if err.Kind != KindInvalidInput {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidInput)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseConfig, "strategy", "trie")
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
		if !strings.Contains(err.Detail, `"trie"`) {
			t.Errorf("Detail = %v, should contain name", err.Detail)
		}
	})

	t.Run("ParseFailed", func(t *testing.T) {
		err := ParseFailed("morse.hcl", errors.New("bad"))
		if err.Phase != PhaseConfig || err.Kind != KindInvalidData {
			t.Errorf("Phase=%v Kind=%v", err.Phase, err.Kind)
		}
	})
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("decode: %w", InvalidCode("x").At(1))

	e, ok := As(wrapped)
	if !ok {
		t.Fatal("As did not find *Error in chain")
	}
	if e.Token != "x" || e.Position != 1 {
		t.Errorf("As = %+v", e)
	}

	if _, ok := As(errors.New("plain")); ok {
		t.Error("As should not match a plain error")
	}
	if _, ok := As(nil); ok {
		t.Error("As should not match nil")
	}
}
