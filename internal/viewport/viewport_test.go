package viewport_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nso-orienteering/results/internal/viewport"
)

func TestIsNarrow_Boundary(t *testing.T) {
	assert.True(t, viewport.IsNarrow(499))
	assert.False(t, viewport.IsNarrow(500))
	assert.False(t, viewport.IsNarrow(1280))
}

func TestFromRequest(t *testing.T) {
	for _, tc := range []struct {
		name     string
		target   string
		cookie   string
		hint     string
		expected viewport.Viewport
	}{
		{"nothing reported", "/results", "", "", viewport.Viewport{}},
		{"query", "/results?width=499", "", "", viewport.Viewport{Width: 499}},
		{"query wins over cookie", "/results?width=320", "1024", "", viewport.Viewport{Width: 320}},
		{"cookie", "/results", "360", "", viewport.Viewport{Width: 360}},
		{"cookie wins over hint", "/results", "360", "800", viewport.Viewport{Width: 360}},
		{"hint", "/results", "", "800", viewport.Viewport{Width: 800}},
		{"garbage ignored", "/results?width=wide", "-5", "abc", viewport.Viewport{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.cookie != "" {
				r.AddCookie(&http.Cookie{Name: viewport.CookieName, Value: tc.cookie})
			}
			if tc.hint != "" {
				r.Header.Set(viewport.HintHeader, tc.hint)
			}
			assert.Equal(t, tc.expected, viewport.FromRequest(r))
		})
	}
}

func TestViewport_Narrow(t *testing.T) {
	assert.False(t, viewport.Viewport{}.Narrow())
	assert.False(t, viewport.Viewport{}.Known())
	assert.True(t, viewport.Viewport{Width: 499}.Narrow())
	assert.False(t, viewport.Viewport{Width: 500}.Narrow())
}
