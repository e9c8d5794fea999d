package util

import (
	"testing"

	"github.com/kbukum/flowkit/errors"
)

func TestFormatEnvString(t *testing.T) {
	t.Setenv("FLOWKIT_ROOT", "/data")
	t.Setenv("FLOWKIT_RUN", "r1")

	tests := []struct {
		in, want string
	}{
		{"{FLOWKIT_ROOT}/runs/{FLOWKIT_RUN}", "/data/runs/r1"},
		{"no placeholders", "no placeholders"},
		{"{{literal}}", "{literal}"},
		{"{{{FLOWKIT_RUN}}}", "{r1}"},
		{"", ""},
	}
	for _, tc := range tests {
		got, err := FormatEnvString(tc.in)
		if err != nil {
			t.Errorf("FormatEnvString(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("FormatEnvString(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatEnvStringUnset(t *testing.T) {
	_, err := FormatEnvString("{FLOWKIT_DEFINITELY_UNSET_VAR}")
	if !errors.IsCode(err, errors.ErrCodeEnvNotSet) {
		t.Errorf("expected ENV_NOT_SET, got %v", err)
	}
}

func TestFormatEnvStringMalformed(t *testing.T) {
	for _, in := range []string{"{open", "close}", "{}", "{a{b}"} {
		if _, err := FormatEnvString(in); !errors.IsCode(err, errors.ErrCodeInvalidArgument) {
			t.Errorf("FormatEnvString(%q): expected INVALID_ARGUMENT, got %v", in, err)
		}
	}
}
