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

	"github.com/trrad/tyche/mathext"
)

// BetaOpts bundles the parameters for creating a Beta distribution.
type BetaOpts struct {
	// Alpha and Beta are the shape parameters; both must be positive.
	Alpha float64
	Beta  float64

	// Src is the source of randomness for Rand. If nil, the process-global
	// locked source is used.
	Src rand.Source
}

// Beta is the beta distribution on the unit interval.
type Beta struct {
	alpha, beta float64
	lbeta       float64 // log B(alpha, beta), fixed at construction
	s           sampler
}

// NewBeta creates a Beta distribution from the provided BetaOpts. It panics
// unless both Alpha and Beta are positive finite numbers.
func NewBeta(opts BetaOpts) *Beta {
	validParam("Beta", "Alpha", opts.Alpha)
	validParam("Beta", "Beta", opts.Beta)
	return &Beta{
		alpha: opts.Alpha,
		beta:  opts.Beta,
		lbeta: mathext.Lbeta(opts.Alpha, opts.Beta),
		s:     newSampler(opts.Src),
	}
}

// Rand draws a variate as X/(X+Y) for independent gamma variates X, Y.
func (b *Beta) Rand() float64 {
	x := gammaRand(b.alpha, b.s)
	y := gammaRand(b.beta, b.s)
	return x / (x + y)
}

// Prob evaluates the density at x; it is 0 outside [0, 1].
func (b *Beta) Prob(x float64) float64 {
	return math.Exp(b.LogProb(x))
}

// LogProb evaluates the log-density at x. The endpoint densities follow the
// power behavior of x^(α−1)(1−x)^(β−1).
func (b *Beta) LogProb(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	if x < 0 || x > 1 {
		return math.Inf(-1)
	}
	if x == 0 || x == 1 {
		shape := b.alpha
		if x == 1 {
			shape = b.beta
		}
		switch {
		case shape > 1:
			return math.Inf(-1)
		case shape == 1:
			return -b.lbeta
		default:
			return math.Inf(1)
		}
	}
	return (b.alpha-1)*math.Log(x) + (b.beta-1)*math.Log1p(-x) - b.lbeta
}

// CDF evaluates the cumulative distribution function at x.
func (b *Beta) CDF(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return mathext.RegIncBeta(b.alpha, b.beta, x)
}

// Quantile evaluates the inverse CDF at p.
func (b *Beta) Quantile(p float64) float64 {
	return mathext.InvRegIncBeta(b.alpha, b.beta, p)
}

// Mean returns α/(α+β).
func (b *Beta) Mean() float64 { return b.alpha / (b.alpha + b.beta) }

// Median returns the 0.5 quantile; the beta median has no general closed
// form.
func (b *Beta) Median() float64 { return b.Quantile(0.5) }

// Variance returns αβ/((α+β)²(α+β+1)).
func (b *Beta) Variance() float64 {
	sum := b.alpha + b.beta
	return b.alpha * b.beta / (sum * sum * (sum + 1))
}

// StdDev returns the square root of the variance.
func (b *Beta) StdDev() float64 { return math.Sqrt(b.Variance()) }

var _ Distribution = (*Beta)(nil)
