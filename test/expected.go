// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package test collects small assertion helpers used by package-level
// _test.go files across the module, so that tests don't need to import a
// third-party assertion library for simple equality/approximate checks.
package test

import (
	"math"
	"reflect"
	"testing"
)

// ExpectEquality fails the test if value and expectedValue are not equal, as
// judged by reflect.DeepEqual.
func ExpectEquality(t *testing.T, value, expectedValue interface{}) {
	t.Helper()
	if !reflect.DeepEqual(value, expectedValue) {
		t.Errorf("values are not equal: %v (wanted %v)", value, expectedValue)
	}
}

// Equate is a synonym for ExpectEquality, kept for the older call sites that
// use it.
func Equate(t *testing.T, value, expectedValue interface{}) {
	t.Helper()
	ExpectEquality(t, value, expectedValue)
}

// ExpectInequality fails the test if value and expectedValue are equal.
func ExpectInequality(t *testing.T, value, unexpectedValue interface{}) {
	t.Helper()
	if reflect.DeepEqual(value, unexpectedValue) {
		t.Errorf("values should not be equal: %v", value)
	}
}

// ExpectApproximate fails the test if value and expectedValue differ by more
// than tolerance times expectedValue: tolerance is a fraction, so 0.1 allows
// value to be up to 10% either side of expectedValue.
func ExpectApproximate(t *testing.T, value, expectedValue, tolerance float64) {
	t.Helper()
	margin := math.Abs(expectedValue * tolerance)
	if math.Abs(value-expectedValue) > margin {
		t.Errorf("value not within tolerance: %f (wanted %f +/- %f)", value, expectedValue, margin)
	}
}

// truthy decides whether v should be treated as a "success" value: false
// booleans and non-nil errors are failures, everything else (including a
// nil error) is a success.
func truthy(v interface{}) bool {
	if v == nil {
		return true
	}
	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	default:
		return true
	}
}

// ExpectSuccess fails the test if v represents a failure: a false bool or a
// non-nil error.
func ExpectSuccess(t *testing.T, v interface{}) {
	t.Helper()
	if !truthy(v) {
		t.Errorf("expected success, got %v", v)
	}
}

// ExpectFailure fails the test if v represents a success: a true bool or a
// nil error (where a bool/error was expected).
func ExpectFailure(t *testing.T, v interface{}) {
	t.Helper()
	if truthy(v) {
		t.Errorf("expected failure, got %v", v)
	}
}

// ExpectedSuccess is a synonym for ExpectSuccess.
func ExpectedSuccess(t *testing.T, v interface{}) {
	t.Helper()
	ExpectSuccess(t, v)
}

// ExpectedFailure is a synonym for ExpectFailure.
func ExpectedFailure(t *testing.T, v interface{}) {
	t.Helper()
	ExpectFailure(t, v)
}
