// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package recognizer

import "rivaas.dev/recognizer/nfa"

const (
	defaultBloomFilterSize = uint64(1000)
	defaultBloomHashFuncs  = 3

	// minStaticRoutesForBloom is the table size below which the bloom filter
	// is skipped: for a handful of routes a direct map probe is cheaper than
	// the bit tests.
	minStaticRoutesForBloom = 10
)

// staticRoute is one compiled parameterless pattern.
type staticRoute struct {
	path  string // pattern path with the leading separator stripped
	state nfa.StateID
}

// staticTable is the full-path fast table Freeze compiles for parameterless
// patterns. A hit is semantically identical to what the automaton would
// return: for a given input an exactly matching static pattern always
// outranks any parameterized competitor (fewer dynamic segments), so the
// table can answer without simulating. Misses fall through to the automaton.
//
// The table is built once during Freeze and read-only afterwards; no lock is
// needed for concurrent lookups.
type staticTable struct {
	routes map[uint64]staticRoute
	bloom  *bloomFilter
}

// optimalBloomFilterSize sizes the filter at roughly 10 bits per route for
// an approximately 1% false positive rate, clamped to [100, 1000000].
func optimalBloomFilterSize(routeCount int) uint64 {
	if routeCount <= 0 {
		return defaultBloomFilterSize
	}
	size := uint64(routeCount * 10)
	if size < 100 {
		return 100
	}
	if size > 1000000 {
		return 1000000
	}

	return size
}

// compileStaticTable builds the table from the entries collected during
// registration. Later entries for the same path overwrite earlier ones,
// which matches the automaton's behavior for duplicate patterns (same
// accepting state, last handler wins).
func compileStaticTable(entries []staticRoute) *staticTable {
	table := &staticTable{
		routes: make(map[uint64]staticRoute, len(entries)),
		bloom:  newBloomFilter(optimalBloomFilterSize(len(entries)), defaultBloomHashFuncs),
	}

	for _, entry := range entries {
		hash := pathHash(entry.path)
		table.routes[hash] = entry
		table.bloom.add(hash)
	}

	return table
}

// lookup returns the accepting state for an exact static path, if present.
// The stored path is compared against the input so an FNV collision can
// never produce a false match.
func (t *staticTable) lookup(path string) (nfa.StateID, bool) {
	if len(t.routes) < minStaticRoutesForBloom {
		if route, ok := t.routes[pathHash(path)]; ok && route.path == path {
			return route.state, true
		}
		return 0, false
	}

	hash := pathHash(path)
	if !t.bloom.test(hash) {
		return 0, false // Definitely not in the set
	}

	if route, ok := t.routes[hash]; ok && route.path == path {
		return route.state, true
	}

	// Bloom filter false positive - path doesn't actually exist
	return 0, false
}
