package internal

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/nso-orienteering/results/internal/config"
	"github.com/nso-orienteering/results/internal/standings"
	"github.com/nso-orienteering/results/internal/templates/partials"
	"github.com/nso-orienteering/results/internal/viewport"
	"github.com/nso-orienteering/results/website"
)

type Application struct {
	Log    *zerolog.Logger
	Config config.Configuration

	Event *standings.EventView
	Cup   *standings.CupView

	// CupErr is set when the season could not be split into clusters. Every
	// page showing the cup table fails with it.
	CupErr error

	sortKey []byte
}

func NewApplication(log *zerolog.Logger, config config.Configuration, event *standings.Event, season *standings.Season) *Application {
	a := &Application{
		Log:    log,
		Config: config,
		Event:  standings.NewEventView(event),
	}
	a.sortKey = a.Config.ReadSecretKey()

	a.Cup, a.CupErr = standings.NewCupView(season)
	if a.CupErr != nil {
		log.Err(a.CupErr).Msg("failed to build the cup table, cup pages will fail")
	}
	return a
}

func (a *Application) requestLog(r *http.Request) *zerolog.Logger {
	log := hlog.FromRequest(r)
	if log.GetLevel() == zerolog.Disabled {
		return a.Log
	}
	return log
}

type templateDataFn func(r *http.Request) (map[string]any, error)

func (a *Application) parseTemplate(templateName string) (*template.Template, error) {
	return template.ParseFS(website.TemplateFS, "templates/base.html", "templates/partials/*", fmt.Sprintf("templates/%s", templateName))
}

func (a *Application) ServeTemplate(logger *zerolog.Logger, pageName partials.PageName, generateTemplateData templateDataFn) http.HandlerFunc {
	templateName := string(pageName) + ".html"
	log := logger.With().Str("page_name", templateName).Logger()

	tmpl, err := a.parseTemplate(templateName)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse template")
	}

	return func(w http.ResponseWriter, r *http.Request) {
		log := a.requestLog(r).With().Str("page_name", templateName).Logger()

		data, err := generateTemplateData(r)
		if err != nil {
			log.Err(err).Msg("failed to generate template data")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if data == nil {
			data = map[string]any{}
		}

		t := tmpl
		if a.Config.DevMode {
			if t, err = a.parseTemplate(templateName); err != nil {
				log.Err(err).Msg("failed to reparse template")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
		}

		vp := GetViewport(r)
		templateData := map[string]any{
			"PageName":       pageName,
			"Data":           data,
			"Narrow":         vp.Narrow(),
			"ViewportKnown":  vp.Known(),
			"Breakpoint":     viewport.Breakpoint,
			"ViewportCookie": viewport.CookieName,
		}
		var buf bytes.Buffer
		if err := t.ExecuteTemplate(&buf, "base.html", templateData); err != nil {
			log.Err(err).Msg("failed to execute the template")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Vary", "Cookie, "+viewport.HintHeader)
		w.Write(buf.Bytes())
	}
}

func (a *Application) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(hlog.NewHandler(*a.Log))
	router.Use(hlog.RequestIDHandler("request_id", "Request-ID"))
	router.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Debug().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("handled request")
	}))
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(a.ViewportMiddleware)

	// Pages
	router.Get("/", a.ServeTemplate(a.Log, partials.PageNameHome, a.GetHomeTemplate))
	router.Get("/results", a.ServeTemplate(a.Log, partials.PageNameResults, a.GetResultsTemplate))
	router.Get("/cup", a.ServeTemplate(a.Log, partials.PageNameCup, a.GetCupTemplate))

	// Actions
	router.Get("/cup/sort", a.HandleCupSort)
	router.Get("/cup/reset", a.HandleCupSortReset)
	router.Get("/qr.png", a.HandleQRCode)

	// Serve static files
	router.Handle("/static/*", http.FileServer(http.FS(website.StaticFS)))

	return router
}

func (a *Application) Start() {
	a.Log.Info().Msg("Starting router")
	handler := a.Router()

	addr := a.Config.GetListenAddress()
	a.Log.Info().Str("address", addr).Msg("Listening")
	if err := http.ListenAndServe(addr, handler); err != nil {
		a.Log.Fatal().Err(err).Msg("HTTP server failed")
	}
}
