package testutil

import (
	"errors"
	"slices"
	"testing"

	apperrors "finboard/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected code and
// that it carries the status of the sentinel it was derived from.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
	if appErr.StatusCode == 0 {
		t.Errorf("AppError %q has no status code", appErr.Code)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertSameIDs checks that got and want hold the same ids, in any order.
// A nil got fails: bulk operations report an empty list, not null.
func AssertSameIDs(t *testing.T, got, want []string) {
	t.Helper()

	if got == nil {
		t.Fatalf("expected ids %v, got nil", want)
	}
	g, w := slices.Clone(got), slices.Clone(want)
	slices.Sort(g)
	slices.Sort(w)
	if !slices.Equal(g, w) {
		t.Errorf("expected ids %v, got %v", want, got)
	}
}
