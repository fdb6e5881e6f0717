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

// NormalOpts bundles the parameters for creating a Normal distribution.
type NormalOpts struct {
	// Mu is the mean. Mandatory in the sense that the zero value gives a
	// standard normal only together with Sigma = 1.
	Mu float64

	// Sigma is the standard deviation and must be positive.
	Sigma float64

	// Src is the source of randomness for Rand. If nil, the process-global
	// locked source is used.
	Src rand.Source
}

// Normal is the normal (Gaussian) distribution N(μ, σ²).
type Normal struct {
	mu, sigma float64
	s         sampler
}

// NewNormal creates a Normal distribution from the provided NormalOpts. It
// panics if Sigma is not a positive finite number or Mu is not finite.
func NewNormal(opts NormalOpts) *Normal {
	validLocation("Normal", "Mu", opts.Mu)
	validParam("Normal", "Sigma", opts.Sigma)
	return &Normal{mu: opts.Mu, sigma: opts.Sigma, s: newSampler(opts.Src)}
}

// Rand draws a variate.
func (n *Normal) Rand() float64 {
	return n.mu + n.sigma*n.s.normFloat64()
}

// Prob evaluates the density at x.
func (n *Normal) Prob(x float64) float64 {
	return math.Exp(n.LogProb(x))
}

// LogProb evaluates the log-density at x.
func (n *Normal) LogProb(x float64) float64 {
	z := (x - n.mu) / n.sigma
	return -0.5*z*z - logSqrt2Pi - math.Log(n.sigma)
}

// CDF evaluates the cumulative distribution function at x. The erfc form
// keeps the lower tail accurate far below the mean.
func (n *Normal) CDF(x float64) float64 {
	z := (x - n.mu) / n.sigma
	return 0.5 * math.Erfc(-z/math.Sqrt2)
}

// Quantile evaluates the inverse CDF at p.
func (n *Normal) Quantile(p float64) float64 {
	return n.mu + n.sigma*mathext.NormalQuantile(p)
}

// Mean returns μ.
func (n *Normal) Mean() float64 { return n.mu }

// Median returns μ.
func (n *Normal) Median() float64 { return n.mu }

// Variance returns σ².
func (n *Normal) Variance() float64 { return n.sigma * n.sigma }

// StdDev returns σ.
func (n *Normal) StdDev() float64 { return n.sigma }

var _ Distribution = (*Normal)(nil)
