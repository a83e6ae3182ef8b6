package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "WithoutCause",
			err:  New(ErrCodeInvalidVariant, "unknown variant: %s", "hologram"),
			want: "INVALID_VARIANT: unknown variant: hologram",
		},
		{
			name: "WithCause",
			err:  Wrap(ErrCodeSourceUnavailable, stderrors.New("connection refused"), "pull records"),
			want: "SOURCE_UNAVAILABLE: pull records: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeMalformedRecord, "bad record")
	if !Is(err, ErrCodeMalformedRecord) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeRenderFailed) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeMalformedRecord) {
		t.Error("Is should not match plain errors")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if !Is(wrapped, ErrCodeMalformedRecord) {
		t.Error("Is should unwrap to find the code")
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap(ErrCodeRenderFailed, cause, "render png")
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should reach the cause through Unwrap")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeSeedFailed, "seed")); got != ErrCodeSeedFailed {
		t.Errorf("GetCode = %q, want SEED_FAILED", got)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
	if got := GetCode(nil); got != "" {
		t.Errorf("GetCode(nil) = %q, want empty", got)
	}
}

func TestMessageFormatting(t *testing.T) {
	err := New(ErrCodeInvalidOutput, "path %q is not writable", "/tmp/x")
	if !strings.Contains(err.Message, `"/tmp/x"`) {
		t.Errorf("Message = %q, want formatted path", err.Message)
	}
}
