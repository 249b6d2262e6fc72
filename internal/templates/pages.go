package templates

import (
	"net/url"
	"strconv"

	"github.com/nso-orienteering/results/internal/standings"
)

type ResultsPage struct {
	Title     string
	Subtitle  string
	Narrow    bool
	Columns   []standings.Column
	Tables    []standings.GroupTable
	Officials []standings.Official
}

type CupPage struct {
	Title        string
	Subtitle     string
	Events       []standings.SeasonEvent
	SummaryLabel string
	Tables       []standings.ClusterTable

	// ReturnPath is the page the sort links come back to.
	ReturnPath string
}

// SortURL is the link behind a sortable header cell.
func (p CupPage) SortURL(id standings.ClusterID, field string) string {
	q := url.Values{}
	q.Set("cluster", strconv.Itoa(int(id)))
	q.Set("field", field)
	if p.ReturnPath != "" {
		q.Set("return", p.ReturnPath)
	}
	return "/cup/sort?" + q.Encode()
}
