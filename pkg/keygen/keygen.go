// Package keygen produces deterministic random key/value workloads
// for the load pipeline and benchmarks.
package keygen

import (
	"iter"
	"math/rand/v2"
)

// Shards splits a workload of total pairs into shardCount sequences.
// Keys are drawn from [0, keyspace), so a keyspace close to total
// yields plenty of duplicates. The same seed always reproduces the
// same streams, and every sequence restarts from its beginning when
// iterated again.
func Shards(total, shardCount int, keyspace, seed uint64) []iter.Seq2[uint64, uint64] {
	shards := make([]iter.Seq2[uint64, uint64], shardCount)
	perShard := total / shardCount

	for i := range shards {
		count := perShard
		if i == shardCount-1 {
			count += total % shardCount
		}

		shardSeed := uint64(i)
		shards[i] = func(yield func(uint64, uint64) bool) {
			rng := rand.New(rand.NewPCG(seed, shardSeed))
			for range count {
				if !yield(rng.Uint64N(keyspace), rng.Uint64()) {
					return
				}
			}
		}
	}

	return shards
}
