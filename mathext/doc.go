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

// Package mathext provides the special functions the standard library math
// package lacks: the log-beta function, the regularized incomplete gamma and
// beta functions with their inverses, the digamma function, and the normal
// quantile (probit) function.
//
// The standard library already provides Gamma, Lgamma, Erf, Erfc, Erfinv and
// Erfcinv; callers should use those directly. This package only fills the
// gaps needed for distribution CDFs and quantiles.
//
// Domain violations return NaN rather than panicking, mirroring the
// conventions of the math package.
package mathext
