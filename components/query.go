package components

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"ordered_index/pkg/cache"
	"ordered_index/pkg/util"
)

type QueryStats struct {
	ReadCount   uint64
	UniqCount   uint64
	LookupCount uint64
	HitCount    uint64
}

// Query reads all shards back as one globally ordered stream,
// counting total and distinct keys, then replays seeded point lookups
// through a read cache in front of the shards.
func Query(cfg *QueryConfig) QueryStats {
	stats := QueryStats{}

	// printing progress each second
	stop := util.SetInterval(func(start, now time.Time) {
		sec := uint64(now.Sub(start).Seconds())
		if sec == 0 {
			return
		}
		reads := atomic.LoadUint64(&stats.ReadCount)
		fmt.Printf(
			"readCount %d, uniqCount %d, sec %d, eps %d\n",
			reads, atomic.LoadUint64(&stats.UniqCount), sec, reads/sec,
		)
	}, time.Second)
	defer stop()

	iterators := make([]iter.Seq[mergeEntry], len(cfg.Shards))
	for i := range cfg.Shards {
		t := cfg.Shards[i]
		iterators[i] = func(yield func(mergeEntry) bool) {
			for e := range t.Iterator() {
				if !yield(mergeEntry{e}) {
					return
				}
			}
		}
	}

	// reading values from all shards in increasing order; since keys
	// arrive ordered, a distinct key is exactly one that differs from
	// its predecessor
	last := Key(0)
	for e := range util.MultiIterator(iterators) {
		if atomic.AddUint64(&stats.ReadCount, 1) == 1 || last != e.Key {
			last = e.Key
			atomic.AddUint64(&stats.UniqCount, 1)
		}
	}

	// point lookups through a read cache; repeated keys in the seeded
	// stream land as cache hits
	c := cache.New[Key, uint64](cfg.CacheSize, nil)
	rng := rand.New(rand.NewPCG(cfg.Seed, uint64(len(cfg.Shards))))
	for range cfg.LookupCount {
		stats.LookupCount++
		k := Key(rng.Uint64N(cfg.Keyspace))

		if _, ok := c.Get(k); ok {
			stats.HitCount++
			continue
		}

		for _, t := range cfg.Shards {
			if v, ok := t.Get(k); ok {
				c.Add(k, v)
				break
			}
		}
	}

	return stats
}
