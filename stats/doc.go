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

// Package stats provides summary statistics over float64 samples: batch
// reductions (mean, median, variance, quantiles) and a streaming Summary
// that estimates φ-quantiles of unbounded observation streams within
// configurable error objectives.
//
// All batch reductions treat the empty slice uniformly: they return NaN.
package stats
