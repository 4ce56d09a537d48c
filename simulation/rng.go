// SPDX-License-Identifier: MIT

package simulation

import "math/rand"

// defaultSeed replaces a zero run seed. It is an arbitrary constant ("netsim"
// in ASCII) so that WithSeed(0) does not collide with small explicit seeds.
const defaultSeed int64 = 0x6e657473696d

// deriveSeed mixes a run seed and an iteration index with the SplitMix64
// finalizer, giving decorrelated per-iteration streams.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// iterationRNG returns the RNG for iteration i of a run seeded with seed.
// Streams depend only on (seed, i), never on scheduling.
func iterationRNG(seed int64, i int) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(deriveSeed(seed, uint64(i))))
}
