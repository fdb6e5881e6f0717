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

package dist

import (
	"math"
	"math/rand"
)

// A Sampler draws random variates.
type Sampler interface {
	Rand() float64
}

// A Quantiler evaluates the inverse CDF. Quantile(p) is the smallest x with
// CDF(x) ≥ p; p outside [0, 1] yields NaN.
type Quantiler interface {
	Quantile(p float64) float64
}

// A Distribution is a univariate probability distribution. Prob is the
// density, which is 0 outside the support; CDF clamps to 0 and 1 outside it.
// NaN inputs propagate NaN.
type Distribution interface {
	Sampler
	Quantiler

	Prob(x float64) float64
	LogProb(x float64) float64
	CDF(x float64) float64

	Mean() float64
	Median() float64
	Variance() float64
	StdDev() float64
}

const logSqrt2Pi = 0.91893853320467274178 // log √(2π)

// sampler adapts an optional caller-supplied source; the zero value draws
// from the process-global locked source.
type sampler struct {
	rnd *rand.Rand
}

func newSampler(src rand.Source) sampler {
	if src == nil {
		return sampler{}
	}
	return sampler{rnd: rand.New(src)}
}

func (s sampler) normFloat64() float64 {
	if s.rnd == nil {
		return rand.NormFloat64()
	}
	return s.rnd.NormFloat64()
}

func (s sampler) float64() float64 {
	if s.rnd == nil {
		return rand.Float64()
	}
	return s.rnd.Float64()
}

// validParam panics unless v is a finite positive number. The name appears
// in the panic message, prefixed by the constructor's distribution name.
func validParam(dist, name string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		panic("dist: " + dist + ": " + name + " must be a positive finite number")
	}
}

// validLocation panics unless v is a finite number (zero and negatives are
// fine for location parameters).
func validLocation(dist, name string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic("dist: " + dist + ": " + name + " must be a finite number")
	}
}
