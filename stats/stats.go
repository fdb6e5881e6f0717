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
	"math"
	"sort"
)

// A ReductionMethod reduces a sample to a single scalar value.
type ReductionMethod func([]float64) float64

// Mean computes the arithmetic mean. It returns NaN for an empty sample.
func Mean(input []float64) float64 {
	if len(input) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range input {
		sum += v
	}
	return sum / float64(len(input))
}

// Average is Mean as a ReductionMethod.
var Average ReductionMethod = Mean

// Variance computes the unbiased sample variance (the n−1 denominator). It
// returns NaN for samples of fewer than two values.
func Variance(input []float64) float64 {
	if len(input) < 2 {
		return math.NaN()
	}
	mean := Mean(input)
	var ss float64
	for _, v := range input {
		d := v - mean
		ss += d * d
	}
	return ss / float64(len(input)-1)
}

// StdDev computes the sample standard deviation.
func StdDev(input []float64) float64 {
	return math.Sqrt(Variance(input))
}

// Minimum reduces a sample to its smallest value.
var Minimum ReductionMethod = func(input []float64) float64 {
	if len(input) == 0 {
		return math.NaN()
	}
	minimum := input[0]
	for _, v := range input[1:] {
		minimum = math.Min(minimum, v)
	}
	return minimum
}

// Maximum reduces a sample to its largest value.
var Maximum ReductionMethod = func(input []float64) float64 {
	if len(input) == 0 {
		return math.NaN()
	}
	maximum := input[0]
	for _, v := range input[1:] {
		maximum = math.Max(maximum, v)
	}
	return maximum
}

// FirstMode extracts the first modal value of the sample.
var FirstMode ReductionMethod = func(input []float64) float64 {
	valuesToFrequency := map[float64]int64{}
	var largestTally int64 = math.MinInt64
	largestTallyValue := math.NaN()

	for _, v := range input {
		presentCount := valuesToFrequency[v] + 1
		valuesToFrequency[v] = presentCount

		if presentCount > largestTally {
			largestTally = presentCount
			largestTallyValue = v
		}
	}

	return largestTallyValue
}

// NearestRank calculates the given percentile (0 to 100) by choosing the
// nearest neighboring value in the sorted sample.
func NearestRank(input []float64, percentile float64) float64 {
	inputSize := len(input)
	if inputSize == 0 {
		return math.NaN()
	}

	ordinalRank := math.Ceil(((percentile / 100.0) * float64(inputSize)) + 0.5)

	copiedInput := make([]float64, inputSize)
	copy(copiedInput, input)
	sort.Float64s(copiedInput)

	preliminaryIndex := int(ordinalRank) - 1

	if preliminaryIndex >= inputSize {
		return copiedInput[inputSize-1]
	}

	return copiedInput[preliminaryIndex]
}

// NearestRankReducer generates a ReductionMethod based off of extracting a
// given percentile value.
func NearestRankReducer(percentile float64) ReductionMethod {
	return func(input []float64) float64 {
		return NearestRank(input, percentile)
	}
}

// Median reduces a sample to its nearest-rank 50th percentile.
var Median ReductionMethod = NearestRankReducer(50)

// Quantile computes the p-quantile (p in [0, 1]) with linear interpolation
// between closest ranks, matching the common "type 7" estimator. p outside
// [0, 1] yields NaN.
func Quantile(input []float64, p float64) float64 {
	if len(input) == 0 || math.IsNaN(p) || p < 0 || p > 1 {
		return math.NaN()
	}

	sorted := make([]float64, len(input))
	copy(sorted, input)
	sort.Float64s(sorted)

	h := p * float64(len(sorted)-1)
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	if lo == hi {
		return sorted[lo]
	}
	frac := h - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
