package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"ordered_index/components"
)

const total = 10_000_000
const shardCount = 8
const keyspace = 20_000_000
const seed = 42
const deleteEvery = 10

const lookupCount = 1_000_000
const lookupCacheSize = 100_000

func main() {
	start := time.Now()

	shards := components.Load(&components.LoadConfig{
		Total:       total,
		ShardCount:  shardCount,
		Keyspace:    keyspace,
		Seed:        seed,
		DeleteEvery: deleteEvery,
	})

	kept := 0
	for _, t := range shards {
		kept += t.Count()
	}
	fmt.Println("loaded", humanize.Comma(int64(kept)), "keys into", shardCount, "shards")

	stats := components.Query(&components.QueryConfig{
		Shards:      shards,
		LookupCount: lookupCount,
		CacheSize:   lookupCacheSize,
		Keyspace:    keyspace,
		Seed:        seed,
	})

	fmt.Println(
		"read", humanize.Comma(int64(stats.ReadCount)),
		"uniq", humanize.Comma(int64(stats.UniqCount)),
		"lookups", humanize.Comma(int64(stats.LookupCount)),
		"cache hits", humanize.Comma(int64(stats.HitCount)),
		"in", time.Since(start),
	)
}
