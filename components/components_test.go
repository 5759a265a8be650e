package components_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ordered_index/components"
)

func TestLoadBuildsValidShards(t *testing.T) {
	shards := components.Load(&components.LoadConfig{
		Total:       9000,
		ShardCount:  3,
		Keyspace:    2000,
		Seed:        5,
		DeleteEvery: 3,
	})

	require.Len(t, shards, 3)
	for i, tree := range shards {
		require.NotNil(t, tree, "shard %d", i)
		require.Positive(t, tree.Count(), "shard %d", i)
		require.NoError(t, tree.Validate(), "shard %d", i)
	}
}

func TestQueryCountsDistinctKeys(t *testing.T) {
	cfg := &components.LoadConfig{
		Total:      6000,
		ShardCount: 3,
		Keyspace:   1500,
		Seed:       11,
	}
	shards := components.Load(cfg)

	expectedRead := 0
	distinct := map[components.Key]bool{}
	for _, tree := range shards {
		expectedRead += tree.Count()
		for e := range tree.Iterator() {
			distinct[e.Key] = true
		}
	}

	stats := components.Query(&components.QueryConfig{
		Shards:      shards,
		LookupCount: 2000,
		CacheSize:   500,
		Keyspace:    cfg.Keyspace,
		Seed:        cfg.Seed,
	})

	require.Equal(t, uint64(expectedRead), stats.ReadCount)
	require.Equal(t, uint64(len(distinct)), stats.UniqCount)
	require.Equal(t, uint64(2000), stats.LookupCount)
	require.LessOrEqual(t, stats.HitCount, stats.LookupCount)
}

func TestKeyCompare(t *testing.T) {
	require.Equal(t, -1, components.Key(1).Compare(2))
	require.Equal(t, 1, components.Key(3).Compare(2))
	require.Equal(t, 0, components.Key(2).Compare(2))
}
