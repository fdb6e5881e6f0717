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

// Package dist implements parametric probability distributions: Beta, Normal,
// LogNormal and Gamma. Each distribution supports sampling, density and
// log-density evaluation, the CDF, the quantile function (inverse CDF), and
// the usual moments.
//
// Distributions are created from an Opts struct; constructors panic on
// invalid parameters, so a successfully constructed distribution is always
// usable:
//
//	n := dist.NewNormal(dist.NormalOpts{Mu: 100, Sigma: 15})
//	x := n.Rand()
//	p := n.CDF(x)
//
// When Opts.Src is nil sampling draws from the process-global source, which
// is safe for concurrent use. Supply a source from NewSource or
// NewNamedSource for reproducible streams; a distribution holding its own
// locked source is likewise safe to sample concurrently.
package dist
