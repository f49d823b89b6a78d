// Package errortest provides test assertions on common errors.
package errortest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/stringto/commonerrors"
)

// AssertError asserts that the error matches one of the `expectedErrors` (see commonerrors.Any).
func AssertError(t *testing.T, err error, expectedErrors ...error) bool {
	t.Helper()
	if commonerrors.Any(err, expectedErrors...) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("Failed error assertion:\n actual: %v\n expected: %+v", err, expectedErrors))
}

// AssertErrorDescription asserts that the error description corresponds to one of the `expectedErrorDescriptions` (see commonerrors.CorrespondTo).
func AssertErrorDescription(t *testing.T, err error, expectedErrorDescriptions ...string) bool {
	t.Helper()
	if commonerrors.CorrespondTo(err, expectedErrorDescriptions...) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("Failed error description assertion:\n actual: %v\n expected: %+v", err, expectedErrorDescriptions))
}

// RequireError is the fatal version of AssertError.
func RequireError(t *testing.T, err error, expectedErrors ...error) {
	t.Helper()
	if commonerrors.Any(err, expectedErrors...) {
		return
	}
	require.FailNow(t, fmt.Sprintf("Failed error requirement:\n actual: %v\n expected: %+v", err, expectedErrors))
}
