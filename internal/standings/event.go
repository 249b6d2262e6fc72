package standings

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

type Competitor struct {
	Name      string  `json:"name"`
	Team      string  `json:"team"`
	Qual      string  `json:"qual"`
	YearBirth int     `json:"year_birth"`
	Gender    string  `json:"gender"`
	CompClass string  `json:"comp_class"`
	Group     string  `json:"group"`
	Result    string  `json:"result"`
	Points    float64 `json:"points"`
}

type Group struct {
	Name        string  `json:"name"`
	NumControls int     `json:"num_controls"`
	Length      float64 `json:"length"`
}

type Event struct {
	LongName    string            `json:"long_name"`
	Date        string            `json:"date"`
	Location    string            `json:"location"`
	Groups      []Group           `json:"groups"`
	Competitors []Competitor      `json:"competitors"`
	Officials   map[string]string `json:"officials"`
}

func ParseEvent(data []byte) (*Event, error) {
	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("failed to parse event fixture: %w", err)
	}
	return &event, nil
}

type OfficialRole struct {
	Key   string
	Title string
}

// OfficialRoles is the fixed, ordered list of officials shown under the
// results.
var OfficialRoles = []OfficialRole{
	{Key: "event-director", Title: "Начальник дистанции"},
	{Key: "technical-director", Title: "Главный судья"},
	{Key: "secretary", Title: "Главный секретарь"},
}

type Official struct {
	Title string
	Name  string
}

// EventView holds the per-group grouping of an event. It is computed once
// and never changes afterwards.
type EventView struct {
	Event        *Event
	ByGroup      map[string][]*Competitor
	GroupsByName map[string]Group
}

func NewEventView(event *Event) *EventView {
	v := &EventView{
		Event:        event,
		ByGroup:      map[string][]*Competitor{},
		GroupsByName: map[string]Group{},
	}
	for _, g := range event.Groups {
		v.GroupsByName[g.Name] = g
		var members []*Competitor
		for i := range event.Competitors {
			if event.Competitors[i].Group == g.Name {
				members = append(members, &event.Competitors[i])
			}
		}
		sortByResult(members)
		v.ByGroup[g.Name] = members
	}
	return v
}

func sortByResult(competitors []*Competitor) {
	sort.SliceStable(competitors, func(i, j int) bool {
		return competitors[i].Result < competitors[j].Result
	})
}

type RankedCompetitor struct {
	Rank int
	*Competitor
}

type GroupTable struct {
	Group Group
	Rows  []RankedCompetitor
}

// Heading is the "<name>, <length> км, <controls> КП" line above a group table.
func (t GroupTable) Heading() string {
	return fmt.Sprintf("%s, %s км, %d КП", t.Group.Name, FormatNumber(t.Group.Length), t.Group.NumControls)
}

// Tables returns one table per group that has at least one competitor, in
// the order the groups appear in the fixture.
func (v *EventView) Tables() []GroupTable {
	var tables []GroupTable
	for _, g := range v.Event.Groups {
		members := v.ByGroup[g.Name]
		if len(members) == 0 {
			continue
		}
		rows := make([]RankedCompetitor, len(members))
		for i, c := range members {
			rows[i] = RankedCompetitor{Rank: i + 1, Competitor: c}
		}
		tables = append(tables, GroupTable{Group: v.GroupsByName[g.Name], Rows: rows})
	}
	return tables
}

func (v *EventView) Subtitle() string {
	return fmt.Sprintf("%s, %s", v.Event.Date, v.Event.Location)
}

func (v *EventView) Officials() []Official {
	officials := make([]Official, len(OfficialRoles))
	for i, role := range OfficialRoles {
		officials[i] = Official{Title: role.Title, Name: v.Event.Officials[role.Key]}
	}
	return officials
}

// FormatNumber renders fixture numbers without trailing zeros, so 100 is "100"
// and 95.5 is "95.5".
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
