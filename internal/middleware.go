package internal

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/nso-orienteering/results/internal/contextkeys"
	"github.com/nso-orienteering/results/internal/viewport"
)

func (a *Application) ViewportMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vp := viewport.FromRequest(r)
		hlog.FromRequest(r).UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int("viewport_width", vp.Width)
		})
		ctx := context.WithValue(r.Context(), contextkeys.ContextKeyViewport, vp)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetViewport(r *http.Request) viewport.Viewport {
	if vp, ok := r.Context().Value(contextkeys.ContextKeyViewport).(viewport.Viewport); ok {
		return vp
	}
	return viewport.FromRequest(r)
}
