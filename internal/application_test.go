package internal_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nso-orienteering/results/internal"
	"github.com/nso-orienteering/results/internal/config"
	"github.com/nso-orienteering/results/internal/standings"
)

func testEvent() *standings.Event {
	return &standings.Event{
		LongName: "Тестовый старт",
		Date:     "01.05.2024",
		Location: "Бердск",
		Groups: []standings.Group{
			{Name: "A", NumControls: 10, Length: 4.5},
			{Name: "B", NumControls: 6, Length: 2},
		},
		Competitors: []standings.Competitor{
			{Name: "Медленный", Qual: "КМС", Group: "A", Result: "10:00"},
			{Name: "Быстрый", Qual: "I", Group: "A", Result: "09:30"},
			{Name: "Одиночка", Group: "B", Result: "12:00"},
		},
		Officials: map[string]string{"event-director": "Сергеев В. А."},
	}
}

func testSeason() *standings.Season {
	return &standings.Season{
		Name:   "Кубок 2024",
		Events: []standings.SeasonEvent{{Name: "Весна", ShortName: "В"}},
		Competitors: []standings.SeasonCompetitor{
			{Name: "Иванов", CompClass: "М21", CupResult: 150},
			{Name: "Петров", CompClass: "М20", CupResult: 190},
			{Name: "Сидоров", CompClass: "М50", CupResult: 80},
			{Name: "Волкова", CompClass: "Ж21", CupResult: 100},
		},
	}
}

func newTestApp(t *testing.T, season *standings.Season) (*internal.Application, http.Handler) {
	t.Helper()
	log := zerolog.Nop()
	app := internal.NewApplication(&log, config.Configuration{SortSecretKey: "test-key"}, testEvent(), season)
	return app, app.Router()
}

func get(t *testing.T, handler http.Handler, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return w
}

func assertOrder(t *testing.T, body string, names ...string) {
	t.Helper()
	last := -1
	for _, name := range names {
		idx := strings.Index(body, name)
		require.NotEqual(t, -1, idx, "%s not rendered", name)
		assert.Greater(t, idx, last, "%s out of order", name)
		last = idx
	}
}

func TestResultsPage(t *testing.T) {
	_, handler := newTestApp(t, testSeason())

	w := get(t, handler, "/results")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Equal(t, 2, strings.Count(body, `class="one-competition-table__table"`))
	assert.Contains(t, body, "A, 4.5 км, 10 КП")
	assertOrder(t, body, "Быстрый", "Медленный", "Одиночка")
	assert.Contains(t, body, "Начальник дистанции")
	assert.Contains(t, body, "Сергеев В. А.")
}

func TestResultsPage_ViewportBreakpoint(t *testing.T) {
	_, handler := newTestApp(t, testSeason())

	narrow := get(t, handler, "/results?width=499").Body.String()
	assert.Contains(t, narrow, "ФИО")
	assert.NotContains(t, narrow, "Квал")
	assert.NotContains(t, narrow, "КМС")
	assert.Contains(t, narrow, "one-competition-table__title_mobile")

	wide := get(t, handler, "/results?width=500").Body.String()
	assert.Contains(t, wide, "Фамилия, имя")
	assert.Contains(t, wide, "Квал")
	assert.Contains(t, wide, "КМС")
	assert.NotContains(t, wide, "one-competition-table__title_mobile")

	fromCookie := get(t, handler, "/results", &http.Cookie{Name: "viewport_width", Value: "320"}).Body.String()
	assert.Contains(t, fromCookie, "ФИО")
}

func TestCupPage_DefaultOrder(t *testing.T) {
	_, handler := newTestApp(t, testSeason())

	w := get(t, handler, "/cup")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assertOrder(t, body, "М21, М20, М50", "Петров", "Иванов", "Сидоров", "Женщины", "Волкова")
	assert.Contains(t, body, "field=cup_result")
	assert.Contains(t, body, "return=%2Fcup")
}

func sortCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == internal.SortCookieName {
			return c
		}
	}
	require.FailNow(t, "no sort cookie set")
	return nil
}

func TestCupSort_TogglesCupResult(t *testing.T) {
	_, handler := newTestApp(t, testSeason())

	w := get(t, handler, "/cup/sort?cluster=0&field=cup_result")
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/cup#cluster-0", w.Header().Get("Location"))
	cookie := sortCookie(t, w)

	body := get(t, handler, "/cup", cookie).Body.String()
	assertOrder(t, body, "Сидоров", "Иванов", "Петров", "Волкова")

	w = get(t, handler, "/cup/sort?cluster=0&field=cup_result&return=/", cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/#cluster-0", w.Header().Get("Location"))

	body = get(t, handler, "/", sortCookie(t, w)).Body.String()
	assertOrder(t, body, "Петров", "Иванов", "Сидоров")
}

func TestCupSortReset(t *testing.T) {
	_, handler := newTestApp(t, testSeason())

	w := get(t, handler, "/cup/reset")
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/cup", w.Header().Get("Location"))
	cookie := sortCookie(t, w)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.Expires.Before(time.Now()))
}

func TestCupSort_RejectsUnknownReturnPath(t *testing.T) {
	_, handler := newTestApp(t, testSeason())

	w := get(t, handler, "/cup/sort?cluster=2&field=name&return=https://example.com")
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/cup#cluster-2", w.Header().Get("Location"))
}

func TestCupSort_BadRequest(t *testing.T) {
	_, handler := newTestApp(t, testSeason())

	assert.Equal(t, http.StatusBadRequest, get(t, handler, "/cup/sort?cluster=0&field=gender").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, handler, "/cup/sort?cluster=7&field=name").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, handler, "/cup/sort").Code)
}

func TestCupSort_TamperedCookieIgnored(t *testing.T) {
	_, handler := newTestApp(t, testSeason())

	w := get(t, handler, "/cup/sort?cluster=0&field=cup_result")
	cookie := sortCookie(t, w)
	cookie.Value = strings.Replace(cookie.Value, ".", ".x", 1)

	body := get(t, handler, "/cup", cookie).Body.String()
	assertOrder(t, body, "Петров", "Иванов", "Сидоров")
}

func TestCupSort_ForeignKeyIgnored(t *testing.T) {
	_, handler := newTestApp(t, testSeason())
	cookie := sortCookie(t, get(t, handler, "/cup/sort?cluster=0&field=cup_result"))

	log := zerolog.Nop()
	other := internal.NewApplication(&log, config.Configuration{SortSecretKey: "other-key"}, testEvent(), testSeason())
	body := get(t, other.Router(), "/cup", cookie).Body.String()
	assertOrder(t, body, "Петров", "Иванов", "Сидоров")
}

func TestUnknownClassFailsCupPages(t *testing.T) {
	season := testSeason()
	season.Competitors = append(season.Competitors, standings.SeasonCompetitor{Name: "Никто", CompClass: "ZZZ"})
	app, handler := newTestApp(t, season)
	assert.ErrorIs(t, app.CupErr, standings.ErrUnknownClass)

	assert.Equal(t, http.StatusInternalServerError, get(t, handler, "/cup").Code)
	assert.Equal(t, http.StatusInternalServerError, get(t, handler, "/").Code)
	assert.Equal(t, http.StatusInternalServerError, get(t, handler, "/cup/sort?cluster=0&field=name").Code)
	assert.Equal(t, http.StatusOK, get(t, handler, "/results").Code)
}

func TestHomePage(t *testing.T) {
	_, handler := newTestApp(t, testSeason())

	w := get(t, handler, "/")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assertOrder(t, body, "Кубок 2024", "Тестовый старт")
	assert.Contains(t, body, "return=%2F\"")
}

func TestQRCode(t *testing.T) {
	_, handler := newTestApp(t, testSeason())

	w := get(t, handler, "/qr.png?path=/cup")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "\x89PNG"))

	assert.Equal(t, http.StatusOK, get(t, handler, "/qr.png").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, handler, "/qr.png?path=/admin").Code)
}

func TestStaticFiles(t *testing.T) {
	_, handler := newTestApp(t, testSeason())

	w := get(t, handler, "/static/style.css")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ".total-table")
}

func TestLoadFixtures_Embedded(t *testing.T) {
	event, season, err := internal.LoadFixtures(config.FixturesConfig{})
	require.NoError(t, err)
	assert.NotEmpty(t, event.Competitors)
	assert.NotEmpty(t, season.Events)

	_, err = standings.NewCupView(season)
	assert.NoError(t, err)
}

func TestLoadFixtures_MissingFile(t *testing.T) {
	_, _, err := internal.LoadFixtures(config.FixturesConfig{EventFile: "/nonexistent/event.json"})
	assert.Error(t, err)
}
