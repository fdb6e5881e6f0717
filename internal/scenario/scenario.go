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

// Package scenario builds distributions from declarative specifications and
// runs sampling experiments over them. It backs the tyche CLI and is shared
// by the example programs.
package scenario

import (
	"fmt"
	"io"
	"math/rand"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/trrad/tyche/dist"
	"github.com/trrad/tyche/stats"
)

// distParams names the required parameters of each supported distribution.
var distParams = map[string][]string{
	"normal":    {"mu", "sigma"},
	"lognormal": {"mu", "sigma"},
	"gamma":     {"alpha", "lambda"},
	"beta":      {"alpha", "beta"},
}

// DefQuantiles are the quantiles reported when a spec names none.
var DefQuantiles = []float64{0.5, 0.9, 0.99}

// DefSampleSize is the number of variates drawn when a spec leaves N zero.
const DefSampleSize = 10000

// A Spec declares one sampling experiment.
type Spec struct {
	// Name identifies the scenario in reports and, when Seed is empty,
	// seeds its random source.
	Name string `yaml:"name"`

	// Dist is one of "normal", "lognormal", "gamma" or "beta".
	Dist string `yaml:"dist"`

	// Params maps parameter names to values; the required names are mu and
	// sigma for normal and lognormal, alpha and lambda for gamma, alpha
	// and beta for beta.
	Params map[string]float64 `yaml:"params"`

	// N is the sample size; zero means DefSampleSize.
	N int `yaml:"n,omitempty"`

	// Seed names the random stream. Specs with equal seeds draw equal
	// streams. Empty means Name.
	Seed string `yaml:"seed,omitempty"`

	// Quantiles lists the ranks reported from the sample; empty means
	// DefQuantiles.
	Quantiles []float64 `yaml:"quantiles,omitempty"`
}

// A File is a collection of scenario specs, as declared in YAML:
//
//	scenarios:
//	  - name: response-times
//	    dist: lognormal
//	    params: {mu: 3.2, sigma: 0.8}
//	    n: 50000
//	    quantiles: [0.5, 0.95, 0.999]
type File struct {
	Scenarios []Spec `yaml:"scenarios"`
}

// Load reads a scenario file. Unknown fields are rejected so that typos in
// hand-written files surface as errors instead of silent defaults.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}
	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("scenario file declares no scenarios")
	}
	seen := map[string]bool{}
	for i, s := range f.Scenarios {
		if s.Name == "" {
			return nil, fmt.Errorf("scenario %d: missing name", i)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("scenario %q declared twice", s.Name)
		}
		seen[s.Name] = true
	}
	return &f, nil
}

// New builds a distribution by name. Src may be nil, in which case sampling
// uses the process-global source.
func New(name string, params map[string]float64, src rand.Source) (d dist.Distribution, err error) {
	required, ok := distParams[name]
	if !ok {
		return nil, fmt.Errorf("unknown distribution %q", name)
	}
	if len(params) != len(required) {
		return nil, fmt.Errorf("distribution %q needs exactly the parameters %v", name, required)
	}
	for _, p := range required {
		if _, ok := params[p]; !ok {
			return nil, fmt.Errorf("distribution %q: missing parameter %q", name, p)
		}
	}

	// The dist constructors panic on out-of-range values; surface that as
	// an error for declarative callers.
	defer func() {
		if r := recover(); r != nil {
			d, err = nil, fmt.Errorf("distribution %q: %v", name, r)
		}
	}()

	switch name {
	case "normal":
		d = dist.NewNormal(dist.NormalOpts{Mu: params["mu"], Sigma: params["sigma"], Src: src})
	case "lognormal":
		d = dist.NewLogNormal(dist.LogNormalOpts{Mu: params["mu"], Sigma: params["sigma"], Src: src})
	case "gamma":
		d = dist.NewGamma(dist.GammaOpts{Alpha: params["alpha"], Lambda: params["lambda"], Src: src})
	case "beta":
		d = dist.NewBeta(dist.BetaOpts{Alpha: params["alpha"], Beta: params["beta"], Src: src})
	}
	return d, nil
}

// Moments are the analytic moments of a distribution.
type Moments struct {
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"stddev"`
}

// A QuantileValue pairs a rank with the sample value estimated for it.
type QuantileValue struct {
	Q     float64 `json:"q"`
	Value float64 `json:"value"`
}

// Empirical summarizes a drawn sample.
type Empirical struct {
	Mean      float64         `json:"mean"`
	StdDev    float64         `json:"stddev"`
	Min       float64         `json:"min"`
	Max       float64         `json:"max"`
	Quantiles []QuantileValue `json:"quantiles"`
}

// A Report is the outcome of running one spec.
type Report struct {
	Scenario  string             `json:"scenario"`
	Dist      string             `json:"dist"`
	Params    map[string]float64 `json:"params"`
	N         int                `json:"n"`
	Seed      string             `json:"seed"`
	Analytic  Moments            `json:"analytic"`
	Empirical Empirical          `json:"empirical"`
}

// Run draws the spec's sample and reports analytic and empirical summaries.
func Run(spec Spec) (*Report, error) {
	seed := spec.Seed
	if seed == "" {
		seed = spec.Name
	}
	d, err := New(spec.Dist, spec.Params, dist.NewNamedSource(seed))
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", spec.Name, err)
	}

	n := spec.N
	if n <= 0 {
		n = DefSampleSize
	}
	sample := make([]float64, n)
	for i := range sample {
		sample[i] = d.Rand()
	}

	quantiles := append([]float64(nil), spec.Quantiles...)
	if len(quantiles) == 0 {
		quantiles = append(quantiles, DefQuantiles...)
	}
	sort.Float64s(quantiles)
	qvs := make([]QuantileValue, 0, len(quantiles))
	for _, q := range quantiles {
		if q < 0 || q > 1 {
			return nil, fmt.Errorf("scenario %q: quantile %v outside [0, 1]", spec.Name, q)
		}
		qvs = append(qvs, QuantileValue{Q: q, Value: stats.Quantile(sample, q)})
	}

	return &Report{
		Scenario: spec.Name,
		Dist:     spec.Dist,
		Params:   spec.Params,
		N:        n,
		Seed:     seed,
		Analytic: Moments{
			Mean:     d.Mean(),
			Median:   d.Median(),
			Variance: d.Variance(),
			StdDev:   d.StdDev(),
		},
		Empirical: Empirical{
			Mean:      stats.Mean(sample),
			StdDev:    stats.StdDev(sample),
			Min:       stats.Minimum(sample),
			Max:       stats.Maximum(sample),
			Quantiles: qvs,
		},
	}, nil
}
