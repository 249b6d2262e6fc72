package standings

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"strconv"
)

var ErrInvalidPermutation = errors.New("sort order does not match cluster")

type EventOutcome struct {
	Group     string  `json:"group"`
	Result    string  `json:"result"`
	Points    float64 `json:"points"`
	CupStatus string  `json:"cup_status"`
}

type SeasonCompetitor struct {
	Name       string                  `json:"name"`
	Team       string                  `json:"team"`
	Qual       string                  `json:"qual"`
	YearBirth  int                     `json:"year_birth"`
	Gender     string                  `json:"gender"`
	CompClass  string                  `json:"comp_class"`
	NumEvents  int                     `json:"num_events"`
	NumCounted int                     `json:"num_counted"`
	CupResult  float64                 `json:"cup_result"`
	Events     map[string]EventOutcome `json:"events"`
}

type SeasonEvent struct {
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

type Season struct {
	Name        string             `json:"name"`
	Events      []SeasonEvent      `json:"events"`
	Competitors []SeasonCompetitor `json:"competitors"`
}

func ParseSeason(data []byte) (*Season, error) {
	var season Season
	if err := json.Unmarshal(data, &season); err != nil {
		return nil, fmt.Errorf("failed to parse season fixture: %w", err)
	}
	return &season, nil
}

// EventNames gives the order of the per-event points columns.
func EventNames(season *Season) []string {
	names := make([]string, len(season.Events))
	for i, e := range season.Events {
		names[i] = e.Name
	}
	return names
}

// SortState maps a cluster to its current order, stored as indexes into the
// cluster's default order. Clusters without an entry are in default order.
// A SortState is never modified in place.
type SortState map[ClusterID][]int

// CupView is the season partitioned into clusters, each in default order
// (cup result descending).
type CupView struct {
	Season     *Season
	EventNames []string
	Default    map[ClusterID][]*SeasonCompetitor
}

func NewCupView(season *Season) (*CupView, error) {
	partition, err := PartitionClusters(season.Competitors)
	if err != nil {
		return nil, err
	}
	for _, members := range partition {
		sortByCupResult(members)
	}
	return &CupView{
		Season:     season,
		EventNames: EventNames(season),
		Default:    partition,
	}, nil
}

// Order returns the cluster's rows in the order given by the state.
func (v *CupView) Order(state SortState, id ClusterID) ([]*SeasonCompetitor, error) {
	def := v.Default[id]
	perm, ok := state[id]
	if !ok {
		return def, nil
	}
	if len(perm) != len(def) {
		return nil, fmt.Errorf("%w: cluster %d has %d rows, order has %d", ErrInvalidPermutation, id, len(def), len(perm))
	}
	seen := make([]bool, len(def))
	ordered := make([]*SeasonCompetitor, len(perm))
	for i, idx := range perm {
		if idx < 0 || idx >= len(def) || seen[idx] {
			return nil, fmt.Errorf("%w: cluster %d has invalid index %d", ErrInvalidPermutation, id, idx)
		}
		seen[idx] = true
		ordered[i] = def[idx]
	}
	return ordered, nil
}

// Sort applies one header click to a cluster and returns the new state. Only
// the clicked cluster's entry changes.
func (v *CupView) Sort(state SortState, id ClusterID, field Field) (SortState, error) {
	if _, err := ClusterByID(id); err != nil {
		return nil, err
	}
	current, err := v.Order(state, id)
	if err != nil {
		return nil, err
	}
	sorted := SortByField(current, field)

	position := make(map[*SeasonCompetitor]int, len(v.Default[id]))
	for i, c := range v.Default[id] {
		position[c] = i
	}
	perm := make([]int, len(sorted))
	for i, c := range sorted {
		perm[i] = position[c]
	}

	next := maps.Clone(state)
	if next == nil {
		next = SortState{}
	}
	next[id] = perm
	return next, nil
}

// Validate drops entries of the state that no longer fit the clusters.
func (v *CupView) Validate(state SortState) (SortState, []error) {
	var errs []error
	valid := SortState{}
	for id, perm := range state {
		if _, err := v.Order(state, id); err != nil {
			errs = append(errs, err)
			continue
		}
		valid[id] = perm
	}
	return valid, errs
}

type CupRow struct {
	Rank int
	*SeasonCompetitor
	// Points holds one cell per season event, blank when the competitor did
	// not take part.
	Points []string
}

func (r CupRow) CupResultText() string {
	return FormatNumber(r.CupResult)
}

type ClusterTable struct {
	Cluster Cluster
	Rows    []CupRow
}

func (v *CupView) pointsCells(c *SeasonCompetitor) []string {
	cells := make([]string, len(v.EventNames))
	for i, name := range v.EventNames {
		if outcome, ok := c.Events[name]; ok {
			cells[i] = FormatNumber(outcome.Points)
		}
	}
	return cells
}

// Tables renders every non-empty cluster in the fixed cluster order.
func (v *CupView) Tables(state SortState) ([]ClusterTable, error) {
	var tables []ClusterTable
	for _, cluster := range Clusters {
		if len(v.Default[cluster.ID]) == 0 {
			continue
		}
		ordered, err := v.Order(state, cluster.ID)
		if err != nil {
			return nil, err
		}
		rows := make([]CupRow, len(ordered))
		for i, c := range ordered {
			rows[i] = CupRow{Rank: i + 1, SeasonCompetitor: c, Points: v.pointsCells(c)}
		}
		tables = append(tables, ClusterTable{Cluster: cluster, Rows: rows})
	}
	return tables, nil
}

// SummaryLabel is the header of the counted-events and total column.
func (v *CupView) SummaryLabel() string {
	return "Кол-во из " + strconv.Itoa(len(v.Season.Events))
}
