package internal

import (
	"net/http"

	"github.com/nso-orienteering/results/internal/standings"
	"github.com/nso-orienteering/results/internal/templates"
)

func (a *Application) cupPage(r *http.Request, returnPath string) (templates.CupPage, error) {
	if a.CupErr != nil {
		return templates.CupPage{}, a.CupErr
	}
	tables, err := a.Cup.Tables(a.GetSortState(r))
	if err != nil {
		return templates.CupPage{}, err
	}
	return templates.CupPage{
		Title:        a.Config.GetCupTitle(),
		Subtitle:     a.Cup.Season.Name,
		Events:       a.Cup.Season.Events,
		SummaryLabel: a.Cup.SummaryLabel(),
		Tables:       tables,
		ReturnPath:   returnPath,
	}, nil
}

func (a *Application) GetCupTemplate(r *http.Request) (map[string]any, error) {
	cup, err := a.cupPage(r, "/cup")
	if err != nil {
		return nil, err
	}
	return map[string]any{"Cup": cup}, nil
}

// sortReturnPaths are the pages a sort action may redirect back to.
var sortReturnPaths = map[string]bool{
	"/":    true,
	"/cup": true,
}

func (a *Application) HandleCupSort(w http.ResponseWriter, r *http.Request) {
	log := a.requestLog(r).With().Str("action", "cup_sort").Logger()
	if a.CupErr != nil {
		log.Err(a.CupErr).Msg("cup table is unavailable")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	clusterID, err := standings.ParseClusterID(r.URL.Query().Get("cluster"))
	if err != nil {
		log.Warn().Err(err).Msg("bad cluster")
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	field, err := standings.ParseField(r.URL.Query().Get("field"))
	if err != nil {
		log.Warn().Err(err).Msg("bad field")
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	log = log.With().Int("cluster", int(clusterID)).Str("field", string(field)).Logger()

	state, err := a.Cup.Sort(a.GetSortState(r), clusterID, field)
	if err != nil {
		log.Err(err).Msg("failed to sort cluster")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if err := a.SetSortState(w, state); err != nil {
		log.Err(err).Msg("failed to sign sort state")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	log.Debug().Msg("sorted cluster")

	returnPath := r.URL.Query().Get("return")
	if !sortReturnPaths[returnPath] {
		returnPath = "/cup"
	}
	cluster, _ := standings.ClusterByID(clusterID)
	http.Redirect(w, r, returnPath+"#"+cluster.Anchor(), http.StatusSeeOther)
}
