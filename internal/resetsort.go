package internal

import (
	"net/http"
	"time"
)

// HandleCupSortReset drops the visitor's sort state, putting every cluster
// back in default order.
func (a *Application) HandleCupSortReset(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{Name: SortCookieName, Value: "", Path: "/", Expires: time.Unix(0, 0)})
	http.Redirect(w, r, "/cup", http.StatusSeeOther)
}
