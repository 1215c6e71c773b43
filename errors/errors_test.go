package errors

import (
	"errors"
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
			name: "full error",
			err: &Error{
				Phase:    PhaseCompile,
				Kind:     KindLoad,
				Resource: "mod.wasm",
				Detail:   "compile module",
			},
			contains: []string{"[compile]", "load", "mod.wasm", "compile module"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseAudit,
				Kind:  KindLeak,
			},
			contains: []string{"[audit]", "leak"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseGuest,
				Kind:   KindInstantiation,
				Detail: "instantiate module",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[guest]", "instantiation", "instantiate module", "caused by", "underlying error"},
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

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseCompile,
		Kind:  KindLoad,
		Cause: cause,
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestError_Is(t *testing.T) {
	a := &Error{Phase: PhaseAudit, Kind: KindLeak}
	b := &Error{Phase: PhaseAudit, Kind: KindLeak, Detail: "different detail"}
	c := &Error{Phase: PhaseGuest, Kind: KindLeak}

	if !errors.Is(a, b) {
		t.Error("errors with the same phase and kind should match")
	}
	if errors.Is(a, c) {
		t.Error("errors with different phases should not match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("boom")
	err := New(PhaseAudit, KindLeak).
		Resource("socket").
		Value(42).
		Detail("slot %d still live", 42).
		Cause(cause).
		Build()

	if err.Phase != PhaseAudit || err.Kind != KindLeak {
		t.Error("Builder lost phase or kind")
	}
	if err.Resource != "socket" {
		t.Errorf("Resource = %q", err.Resource)
	}
	if err.Detail != "slot 42 still live" {
		t.Errorf("Detail = %q", err.Detail)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v", err.Value)
	}
	if err.Cause != cause {
		t.Error("Builder lost cause")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	leak := Leaked(3)
	if leak.Value != 3 {
		t.Errorf("Leaked should carry the count, got %v", leak.Value)
	}
	if !strings.Contains(leak.Error(), "3 resource(s)") {
		t.Errorf("Leaked: %q", leak.Error())
	}

	cause := errors.New("bad magic")
	if got := Load("mod.wasm", cause); !errors.Is(got, cause) {
		t.Error("Load should wrap its cause")
	}
	if got := Instantiation("mod.wasm", cause); got.Kind != KindInstantiation {
		t.Error("Instantiation kind mismatch")
	}
}
