package errors

import (
	stdErrors "errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"not found", ErrNotFound},
		{"invalid credentials", ErrInvalidCredentials},
		{"missing date", ErrMissingDate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}

func TestMissingDateMessage(t *testing.T) {
	if ErrMissingDate.Error() != "Date parameter is required" {
		t.Fatalf("unexpected message: %q", ErrMissingDate.Error())
	}
}
