package standings

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
)

var (
	ErrUnknownClass   = errors.New("competition class is not in any cluster")
	ErrUnknownCluster = errors.New("unknown cluster")
)

type ClusterID int

// Cluster is a fixed display grouping of competition classes in the cup
// table.
type Cluster struct {
	ID      ClusterID
	Name    string
	Classes []string
}

// Clusters is ordered; a class belongs to at most one cluster.
var Clusters = []Cluster{
	{ID: 0, Name: "М21, М20, М50", Classes: []string{"М21", "М20", "М50"}},
	{ID: 1, Name: "М17, М60, М70", Classes: []string{"М17", "М60", "М70"}},
	{ID: 2, Name: "Женщины", Classes: []string{"Ж17", "Ж45", "Ж21", "Ж60"}},
	{ID: 3, Name: "Школьники", Classes: []string{"Ж14", "Ж11", "М14", "М11"}},
	{ID: 4, Name: "Дети с родителями", Classes: []string{"Д+Р"}},
}

func ClusterFor(class string) (Cluster, bool) {
	for _, c := range Clusters {
		if slices.Contains(c.Classes, class) {
			return c, true
		}
	}
	return Cluster{}, false
}

func ClusterByID(id ClusterID) (Cluster, error) {
	if id < 0 || int(id) >= len(Clusters) {
		return Cluster{}, fmt.Errorf("%w: %d", ErrUnknownCluster, id)
	}
	return Clusters[id], nil
}

func ParseClusterID(s string) (ClusterID, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCluster, s)
	}
	cluster, err := ClusterByID(ClusterID(n))
	if err != nil {
		return 0, err
	}
	return cluster.ID, nil
}

// Anchor is the fragment identifier of the cluster's table on the page.
func (c Cluster) Anchor() string {
	return "cluster-" + strconv.Itoa(int(c.ID))
}

// PartitionClusters buckets competitors by cluster. A single competitor
// whose class matches no cluster fails the whole partition.
func PartitionClusters(competitors []SeasonCompetitor) (map[ClusterID][]*SeasonCompetitor, error) {
	partition := map[ClusterID][]*SeasonCompetitor{}
	for i := range competitors {
		c := &competitors[i]
		cluster, ok := ClusterFor(c.CompClass)
		if !ok {
			return nil, fmt.Errorf("%w: %q (%s)", ErrUnknownClass, c.CompClass, c.Name)
		}
		partition[cluster.ID] = append(partition[cluster.ID], c)
	}
	return partition, nil
}
