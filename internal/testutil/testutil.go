// Copyright 2026 The Tyche Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package testutil provides numeric comparison helpers shared by the package
// tests in this module.
package testutil

import (
	"math"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// Tolerance tiers for numeric comparisons.
const (
	// ToleranceStrict is for closed-form identities and quantile/CDF
	// round trips on well-conditioned inputs.
	ToleranceStrict = 1e-12

	// ToleranceNormal is for special-function values checked against
	// independently computed references.
	ToleranceNormal = 1e-9

	// ToleranceSampling is for empirical moments of large fixed-seed
	// samples compared with analytic values.
	ToleranceSampling = 2e-2
)

// NearRel reports whether got is within tol of want in relative terms,
// falling back to absolute difference near zero. NaNs compare equal to NaNs
// and infinities must match exactly.
func NearRel(got, want, tol float64) bool {
	switch {
	case math.IsNaN(want):
		return math.IsNaN(got)
	case math.IsInf(want, 0):
		return got == want
	case math.Abs(want) < 1:
		return math.Abs(got-want) <= tol
	default:
		return math.Abs(got-want) <= tol*math.Abs(want)
	}
}

// CheckFloat fails the test when got is not within tol of want.
func CheckFloat(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if !NearRel(got, want, tol) {
		t.Errorf("%s: got %v, want %v (tolerance %v, diff %v)",
			name, got, want, tol, math.Abs(got-want))
	}
}

// CheckDeep fails the test when got and want are not deeply equal, dumping
// both values.
func CheckDeep(t *testing.T, name string, got, want interface{}) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("%s mismatch:\ngot:  %swant: %s", name, spew.Sdump(got), spew.Sdump(want))
	}
}
