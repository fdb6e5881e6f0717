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
	"testing"

	"github.com/trrad/tyche/internal/testutil"
)

// testCase carries one parameterized distribution together with its analytic
// moments and a few interior support points.
type testCase struct {
	name     string
	d        Distribution
	mean     float64
	variance float64
	points   []float64
}

func testCases() []testCase {
	sigma := 0.5
	lnMean := math.Exp(1 + 0.5*sigma*sigma)
	lnVar := math.Expm1(sigma*sigma) * math.Exp(2+sigma*sigma)
	return []testCase{
		{
			name:     "normal",
			d:        NewNormal(NormalOpts{Mu: 100, Sigma: 15, Src: NewNamedSource("normal")}),
			mean:     100,
			variance: 225,
			points:   []float64{60, 90, 100, 115, 140},
		},
		{
			name:     "lognormal",
			d:        NewLogNormal(LogNormalOpts{Mu: 1, Sigma: sigma, Src: NewNamedSource("lognormal")}),
			mean:     lnMean,
			variance: lnVar,
			points:   []float64{0.5, 1.5, math.E, 5, 12},
		},
		{
			name:     "gamma",
			d:        NewGamma(GammaOpts{Alpha: 2.5, Lambda: 0.5, Src: NewNamedSource("gamma")}),
			mean:     5,
			variance: 10,
			points:   []float64{0.5, 2, 5, 9, 20},
		},
		{
			name:     "beta",
			d:        NewBeta(BetaOpts{Alpha: 2, Beta: 5, Src: NewNamedSource("beta")}),
			mean:     2.0 / 7,
			variance: 10.0 / (49 * 8),
			points:   []float64{0.05, 0.2, 0.4, 0.6, 0.9},
		},
	}
}

func TestMoments(t *testing.T) {
	for _, c := range testCases() {
		t.Run(c.name, func(t *testing.T) {
			testutil.CheckFloat(t, "Mean", c.d.Mean(), c.mean, testutil.ToleranceStrict)
			testutil.CheckFloat(t, "Variance", c.d.Variance(), c.variance, testutil.ToleranceStrict)
			testutil.CheckFloat(t, "StdDev", c.d.StdDev(), math.Sqrt(c.variance), testutil.ToleranceStrict)
			// The median is the 0.5 quantile by definition.
			testutil.CheckFloat(t, "CDF(Median)", c.d.CDF(c.d.Median()), 0.5, testutil.ToleranceNormal)
		})
	}
}

func TestQuantileCDFRoundTrip(t *testing.T) {
	ps := []float64{1e-4, 0.01, 0.1, 0.25, 0.5, 0.75, 0.9, 0.99, 1 - 1e-4}
	for _, c := range testCases() {
		t.Run(c.name, func(t *testing.T) {
			for _, p := range ps {
				x := c.d.Quantile(p)
				testutil.CheckFloat(t, "CDF(Quantile(p))", c.d.CDF(x), p, testutil.ToleranceNormal)
			}
		})
	}
}

func TestProbMatchesLogProb(t *testing.T) {
	for _, c := range testCases() {
		t.Run(c.name, func(t *testing.T) {
			for _, x := range c.points {
				want := math.Exp(c.d.LogProb(x))
				testutil.CheckFloat(t, "Prob", c.d.Prob(x), want, testutil.ToleranceStrict)
			}
		})
	}
}

func TestProbIsCDFDerivative(t *testing.T) {
	// Central difference of the CDF against the density at interior points.
	const h = 1e-6
	for _, c := range testCases() {
		t.Run(c.name, func(t *testing.T) {
			for _, x := range c.points {
				got := (c.d.CDF(x+h) - c.d.CDF(x-h)) / (2 * h)
				want := c.d.Prob(x)
				if !testutil.NearRel(got, want, 1e-4) {
					t.Errorf("dCDF/dx at %v: got %v, want %v", x, got, want)
				}
			}
		})
	}
}

func TestSamplingMoments(t *testing.T) {
	const n = 200000
	for _, c := range testCases() {
		t.Run(c.name, func(t *testing.T) {
			var sum, sumSq float64
			median := c.d.Median()
			below := 0
			for i := 0; i < n; i++ {
				v := c.d.Rand()
				sum += v
				sumSq += v * v
				if v < median {
					below++
				}
			}
			mean := sum / n
			variance := sumSq/n - mean*mean
			testutil.CheckFloat(t, "empirical mean", mean, c.mean, testutil.ToleranceSampling)
			testutil.CheckFloat(t, "empirical variance", variance, c.variance, 3*testutil.ToleranceSampling)
			testutil.CheckFloat(t, "fraction below median", float64(below)/n, 0.5, testutil.ToleranceSampling)
		})
	}
}

func TestNamedSourceDeterminism(t *testing.T) {
	draw := func() []float64 {
		g := NewGamma(GammaOpts{Alpha: 0.7, Lambda: 2, Src: NewNamedSource("replay")})
		out := make([]float64, 16)
		for i := range out {
			out[i] = g.Rand()
		}
		return out
	}
	testutil.CheckDeep(t, "replayed stream", draw(), draw())

	a := NewNamedSource("a").Uint64()
	b := NewNamedSource("b").Uint64()
	if a == b {
		t.Errorf("distinct names produced identical first draws: %v", a)
	}
}

func TestSupportEdges(t *testing.T) {
	ln := NewLogNormal(LogNormalOpts{Mu: 0, Sigma: 1})
	if got := ln.CDF(-1); got != 0 {
		t.Errorf("LogNormal.CDF(-1): got %v, want 0", got)
	}
	if got := ln.Prob(-1); got != 0 {
		t.Errorf("LogNormal.Prob(-1): got %v, want 0", got)
	}
	if got := ln.Quantile(0); got != 0 {
		t.Errorf("LogNormal.Quantile(0): got %v, want 0", got)
	}
	if got := ln.Quantile(1); !math.IsInf(got, 1) {
		t.Errorf("LogNormal.Quantile(1): got %v, want +Inf", got)
	}

	g := NewGamma(GammaOpts{Alpha: 1, Lambda: 3})
	testutil.CheckFloat(t, "Gamma(1,3).Prob(0)", g.Prob(0), 3, testutil.ToleranceStrict)
	if got := g.CDF(-2); got != 0 {
		t.Errorf("Gamma.CDF(-2): got %v, want 0", got)
	}

	b := NewBeta(BetaOpts{Alpha: 0.5, Beta: 0.5})
	if got := b.CDF(2); got != 1 {
		t.Errorf("Beta.CDF(2): got %v, want 1", got)
	}
	if got := b.Prob(0); !math.IsInf(got, 1) {
		t.Errorf("Beta(.5,.5).Prob(0): got %v, want +Inf", got)
	}
	if got := b.Prob(0.5); math.IsNaN(got) || got <= 0 {
		t.Errorf("Beta.Prob(0.5): got %v, want positive", got)
	}

	n := NewNormal(NormalOpts{Mu: 0, Sigma: 1})
	for _, d := range []Distribution{ln, g, b, n} {
		if got := d.CDF(math.NaN()); !math.IsNaN(got) {
			t.Errorf("CDF(NaN): got %v, want NaN", got)
		}
		if got := d.Quantile(2); !math.IsNaN(got) {
			t.Errorf("Quantile(2): got %v, want NaN", got)
		}
	}
}

func TestConstructorPanics(t *testing.T) {
	cases := []struct {
		name string
		fn   func()
	}{
		{"normal zero sigma", func() { NewNormal(NormalOpts{Mu: 0, Sigma: 0}) }},
		{"normal NaN mu", func() { NewNormal(NormalOpts{Mu: math.NaN(), Sigma: 1}) }},
		{"lognormal negative sigma", func() { NewLogNormal(LogNormalOpts{Mu: 0, Sigma: -1}) }},
		{"gamma zero shape", func() { NewGamma(GammaOpts{Alpha: 0, Lambda: 1}) }},
		{"gamma inf rate", func() { NewGamma(GammaOpts{Alpha: 1, Lambda: math.Inf(1)}) }},
		{"beta zero beta", func() { NewBeta(BetaOpts{Alpha: 1, Beta: 0}) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("constructor did not panic")
				}
			}()
			c.fn()
		})
	}
}

func TestConcurrentSampling(t *testing.T) {
	// A distribution backed by a locked named source must be safe to sample
	// from multiple goroutines.
	g := NewGamma(GammaOpts{Alpha: 3, Lambda: 1, Src: NewNamedSource("concurrent")})
	done := make(chan struct{})
	for w := 0; w < 4; w++ {
		go func() {
			for i := 0; i < 1000; i++ {
				if v := g.Rand(); v <= 0 || math.IsNaN(v) {
					t.Errorf("Rand: got %v, want positive", v)
					break
				}
			}
			done <- struct{}{}
		}()
	}
	for w := 0; w < 4; w++ {
		<-done
	}
}

func benchmarkRand(d Distribution, b *testing.B) {
	for i := 0; i < b.N; i++ {
		d.Rand()
	}
}

func BenchmarkNormalRand(b *testing.B) {
	benchmarkRand(NewNormal(NormalOpts{Mu: 0, Sigma: 1, Src: NewSource(1)}), b)
}

func BenchmarkGammaRand(b *testing.B) {
	benchmarkRand(NewGamma(GammaOpts{Alpha: 2.5, Lambda: 1, Src: NewSource(1)}), b)
}

func BenchmarkBetaRand(b *testing.B) {
	benchmarkRand(NewBeta(BetaOpts{Alpha: 2, Beta: 5, Src: NewSource(1)}), b)
}

func BenchmarkBetaQuantile(b *testing.B) {
	d := NewBeta(BetaOpts{Alpha: 2, Beta: 5})
	ps := [4]float64{0.01, 0.3, 0.6, 0.999}
	for i := 0; i < b.N; i++ {
		d.Quantile(ps[i%4])
	}
}
