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

package stats

import (
	"fmt"
	"math"
	"sync"

	"github.com/beorn7/perks/quantile"
)

// DefObjectives are the default Summary quantile ranks and their respective
// absolute errors.
var DefObjectives = map[float64]float64{
	0.5:  0.05,
	0.9:  0.01,
	0.99: 0.001,
}

// DefBufCap is the standard buffer size for collecting Summary observations
// before they are flushed into the quantile stream.
const DefBufCap = 500

// SummaryOpts bundles the options for creating a Summary. All fields are
// optional and can safely be left at their zero value.
type SummaryOpts struct {
	// Objectives defines the quantile rank estimates with their respective
	// absolute error. If Objectives[q] = e, then the value reported for q
	// will be the φ-quantile value for some φ between q−e and q+e. The
	// default value is DefObjectives.
	Objectives map[float64]float64

	// BufCap defines the observation buffer size. The default value of
	// DefBufCap should suffice for most uses.
	BufCap int
}

// A Summary captures individual observations from an unbounded value stream
// and estimates their φ-quantiles within the configured error objectives,
// along with the exact count and sum. It is safe for concurrent use.
type Summary struct {
	mu sync.Mutex

	objectives map[float64]float64
	stream     *quantile.Stream
	buf        []float64

	cnt uint64
	sum float64
}

// A SummarySnapshot is a point-in-time view of a Summary, with quantile
// estimates at the configured objective ranks.
type SummarySnapshot struct {
	Count     uint64
	Sum       float64
	Mean      float64
	Quantiles map[float64]float64
}

// NewSummary creates a Summary from the provided SummaryOpts. It panics if
// an objective rank lies outside (0, 1) or a BufCap is negative.
func NewSummary(opts SummaryOpts) *Summary {
	objectives := opts.Objectives
	if len(objectives) == 0 {
		objectives = DefObjectives
	}
	for rank, err := range objectives {
		if rank <= 0 || rank >= 1 {
			panic(fmt.Sprintf("stats: illegal objective rank %v", rank))
		}
		if err <= 0 || err >= 1 {
			panic(fmt.Sprintf("stats: illegal objective error %v", err))
		}
	}

	cap := opts.BufCap
	if cap < 0 {
		panic(fmt.Sprintf("stats: illegal buffer capacity %d", cap))
	} else if cap == 0 {
		cap = DefBufCap
	}

	return &Summary{
		objectives: objectives,
		stream:     quantile.NewTargeted(objectives),
		buf:        make([]float64, 0, cap),
	}
}

// Observe adds a single observation to the summary.
func (s *Summary) Observe(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cnt++
	s.sum += v
	s.buf = append(s.buf, v)
	if len(s.buf) == cap(s.buf) {
		s.flush()
	}
}

// flush drains the observation buffer into the quantile stream. The caller
// must hold mu.
func (s *Summary) flush() {
	for _, v := range s.buf {
		s.stream.Insert(v)
	}
	s.buf = s.buf[:0]
}

// Count returns the number of observations.
func (s *Summary) Count() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cnt
}

// Sum returns the sum of all observations.
func (s *Summary) Sum() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sum
}

// Mean returns the mean of all observations, or NaN before the first one.
func (s *Summary) Mean() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cnt == 0 {
		return math.NaN()
	}
	return s.sum / float64(s.cnt)
}

// Quantile estimates the q-quantile of the observations seen so far. The
// estimate honors the configured error objective for q in Objectives; for
// other ranks it is best-effort. Before the first observation it is NaN.
func (s *Summary) Quantile(q float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cnt == 0 {
		return math.NaN()
	}
	s.flush()
	return s.stream.Query(q)
}

// Snapshot returns a consistent view of the summary at the configured
// objective ranks.
func (s *Summary) Snapshot() SummarySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := SummarySnapshot{
		Count:     s.cnt,
		Sum:       s.sum,
		Mean:      math.NaN(),
		Quantiles: make(map[float64]float64, len(s.objectives)),
	}
	if s.cnt > 0 {
		snap.Mean = s.sum / float64(s.cnt)
	}
	s.flush()
	for rank := range s.objectives {
		if s.cnt == 0 {
			snap.Quantiles[rank] = math.NaN()
			continue
		}
		snap.Quantiles[rank] = s.stream.Query(rank)
	}
	return snap
}

// Reset drops all observations.
func (s *Summary) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stream.Reset()
	s.buf = s.buf[:0]
	s.cnt = 0
	s.sum = 0
}
