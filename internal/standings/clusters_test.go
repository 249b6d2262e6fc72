package standings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nso-orienteering/results/internal/standings"
)

func TestClusterFor(t *testing.T) {
	cluster, ok := standings.ClusterFor("М21")
	require.True(t, ok)
	assert.Equal(t, "М21, М20, М50", cluster.Name)

	cluster, ok = standings.ClusterFor("Д+Р")
	require.True(t, ok)
	assert.Equal(t, "Дети с родителями", cluster.Name)

	_, ok = standings.ClusterFor("ZZZ")
	assert.False(t, ok)
}

func TestClusters_EachClassInOneCluster(t *testing.T) {
	seen := map[string]string{}
	for i, c := range standings.Clusters {
		assert.Equal(t, standings.ClusterID(i), c.ID)
		for _, class := range c.Classes {
			other, dup := seen[class]
			assert.False(t, dup, "class %s in %s and %s", class, other, c.Name)
			seen[class] = c.Name
		}
	}
	assert.Len(t, standings.Clusters, 5)
}

func TestPartitionClusters(t *testing.T) {
	competitors := []standings.SeasonCompetitor{
		{Name: "a", CompClass: "М21"},
		{Name: "b", CompClass: "Ж45"},
		{Name: "c", CompClass: "М50"},
		{Name: "d", CompClass: "М11"},
	}
	partition, err := standings.PartitionClusters(competitors)
	require.NoError(t, err)

	assert.Len(t, partition[0], 2)
	assert.Len(t, partition[2], 1)
	assert.Len(t, partition[3], 1)
	assert.NotContains(t, partition, standings.ClusterID(1))

	total := 0
	for id, members := range partition {
		total += len(members)
		for _, c := range members {
			cluster, ok := standings.ClusterFor(c.CompClass)
			require.True(t, ok)
			assert.Equal(t, id, cluster.ID)
		}
	}
	assert.Equal(t, len(competitors), total)
}

func TestPartitionClusters_UnknownClassFails(t *testing.T) {
	_, err := standings.PartitionClusters([]standings.SeasonCompetitor{
		{Name: "ok", CompClass: "М21"},
		{Name: "bad", CompClass: "ZZZ"},
	})
	assert.ErrorIs(t, err, standings.ErrUnknownClass)
	assert.ErrorContains(t, err, "ZZZ")
}

func TestParseClusterID(t *testing.T) {
	id, err := standings.ParseClusterID("4")
	require.NoError(t, err)
	assert.Equal(t, standings.ClusterID(4), id)

	for _, bad := range []string{"", "5", "-1", "x"} {
		_, err := standings.ParseClusterID(bad)
		assert.ErrorIs(t, err, standings.ErrUnknownCluster, bad)
	}
}

func TestCluster_Anchor(t *testing.T) {
	assert.Equal(t, "cluster-2", standings.Clusters[2].Anchor())
}
