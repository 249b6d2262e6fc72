package internal

import (
	"net/http"

	"github.com/nso-orienteering/results/internal/standings"
	"github.com/nso-orienteering/results/internal/templates"
)

func (a *Application) resultsPage(r *http.Request) templates.ResultsPage {
	narrow := GetViewport(r).Narrow()
	return templates.ResultsPage{
		Title:     a.Event.Event.LongName,
		Subtitle:  a.Event.Subtitle(),
		Narrow:    narrow,
		Columns:   standings.EventColumns(narrow),
		Tables:    a.Event.Tables(),
		Officials: a.Event.Officials(),
	}
}

func (a *Application) GetResultsTemplate(r *http.Request) (map[string]any, error) {
	return map[string]any{
		"Results": a.resultsPage(r),
	}, nil
}

func (a *Application) GetHomeTemplate(r *http.Request) (map[string]any, error) {
	cup, err := a.cupPage(r, "/")
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"Cup":     cup,
		"Results": a.resultsPage(r),
	}, nil
}
