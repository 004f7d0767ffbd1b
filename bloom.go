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

import "hash/fnv"

// bloomFilter provides a simple bloom filter for negative lookups:
// "definitely not in the set" is exact, "possibly in the set" may be a false
// positive. The static table consults it before hashing into its route map
// so unmatched paths bail out on a few bit tests.
//
// Implementation uses FNV-1a with per-function seeds XORed into a single
// base hash, which avoids re-hashing the input per function.
type bloomFilter struct {
	bits  []uint64 // Bit array (each uint64 holds 64 bits)
	size  uint64   // Total number of bits
	seeds []uint64 // Hash seeds for multiple hash functions
}

// newBloomFilter creates a bloom filter with the specified size in bits and
// number of hash functions.
func newBloomFilter(size uint64, numHashFuncs int) *bloomFilter {
	bf := &bloomFilter{
		bits:  make([]uint64, (size+63)/64), // Round up to nearest 64-bit boundary
		size:  size,
		seeds: make([]uint64, numHashFuncs),
	}

	for i := 0; i < numHashFuncs; i++ {
		bf.seeds[i] = uint64(i + 1)
	}

	return bf
}

func (bf *bloomFilter) position(baseHash, seed uint64) uint64 {
	return (baseHash ^ seed) % bf.size
}

// add sets the filter bits for a pre-computed FNV-1a base hash.
func (bf *bloomFilter) add(baseHash uint64) {
	for _, seed := range bf.seeds {
		pos := bf.position(baseHash, seed)
		bf.bits[pos/64] |= 1 << (pos % 64)
	}
}

// test reports whether an element with the given base hash might be in the
// set. Early exit on the first unset bit: rejecting non-existent paths is
// the whole point of the filter.
func (bf *bloomFilter) test(baseHash uint64) bool {
	for _, seed := range bf.seeds {
		pos := bf.position(baseHash, seed)
		if bf.bits[pos/64]&(1<<(pos%64)) == 0 {
			return false
		}
	}

	return true
}

// pathHash computes the FNV-1a hash shared by the bloom filter and the
// static route map.
func pathHash(path string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(path))
	return h.Sum64()
}
