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
	"math/rand"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// NewSource returns a deterministic random source seeded with seed. The
// source is locked and may be shared between distributions and goroutines.
func NewSource(seed uint64) rand.Source64 {
	return &lockedSource{src: rand.NewSource(int64(seed)).(rand.Source64)}
}

// NewNamedSource returns a deterministic random source whose seed is derived
// from name by hashing, so that a scenario name reproduces the same variate
// stream across runs and hosts.
func NewNamedSource(name string) rand.Source64 {
	return NewSource(xxhash.Sum64String(name))
}

type lockedSource struct {
	mu  sync.Mutex
	src rand.Source64
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	v := s.src.Int63()
	s.mu.Unlock()
	return v
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	v := s.src.Uint64()
	s.mu.Unlock()
	return v
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	s.src.Seed(seed)
	s.mu.Unlock()
}
