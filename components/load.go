package components

import (
	"fmt"
	"iter"
	"sync"
	"sync/atomic"
	"time"

	"ordered_index/pkg/keygen"
	"ordered_index/pkg/rbtree"
	"ordered_index/pkg/util"
)

// Load builds one index per shard in parallel from seeded random
// streams and returns the shards. Each goroutine owns its tree
// exclusively, so no tree sees concurrent mutation.
func Load(cfg *LoadConfig) []*Tree {
	shardSeqs := keygen.Shards(cfg.Total, cfg.ShardCount, cfg.Keyspace, cfg.Seed)
	shards := make([]*Tree, len(shardSeqs))

	writeCount := uint64(0)
	deleteCount := uint64(0)

	// printing progress each second
	stop := util.SetInterval(func(start, now time.Time) {
		sec := uint64(now.Sub(start).Seconds())
		if sec == 0 {
			return
		}
		writes := atomic.LoadUint64(&writeCount)
		fmt.Printf(
			"writeCount %d, deleteCount %d, sec %d, eps %d\n",
			writes, atomic.LoadUint64(&deleteCount), sec, writes/sec,
		)
	}, time.Second)
	defer stop()

	wg := &sync.WaitGroup{}
	for i, seq := range shardSeqs {
		wg.Add(1)
		// building each shard in a separate goroutine
		go func(i int, seq iter.Seq2[uint64, uint64]) {
			defer wg.Done()
			t := rbtree.New[uint32, Key, uint64]()

			n := 0
			for k, v := range seq {
				atomic.AddUint64(&writeCount, 1)
				t.Put(Key(k), v)

				n++
				if cfg.DeleteEvery > 0 && n%cfg.DeleteEvery == 0 {
					if _, ok := t.Delete(Key(k)); ok {
						atomic.AddUint64(&deleteCount, 1)
					}
				}
			}

			shards[i] = t
		}(i, seq)
	}

	wg.Wait() // waiting for every shard to be fully built
	return shards
}
