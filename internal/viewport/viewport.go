package viewport

import (
	"net/http"
	"strconv"
)

// Breakpoint is the smallest width, in CSS pixels, that still gets the wide
// layout.
const Breakpoint = 500

const (
	QueryParam = "width"
	CookieName = "viewport_width"
	HintHeader = "Sec-CH-Viewport-Width"
)

func IsNarrow(width int) bool {
	return width < Breakpoint
}

// Viewport is the width reported by the browser. Width is 0 when the browser
// did not report one, which renders the wide layout.
type Viewport struct {
	Width int
}

func (v Viewport) Known() bool {
	return v.Width > 0
}

func (v Viewport) Narrow() bool {
	return v.Known() && IsNarrow(v.Width)
}

func parseWidth(s string) (int, bool) {
	w, err := strconv.Atoi(s)
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}

// FromRequest resolves the width from the query string, then the cookie set
// by the resize listener, then the client hint header.
func FromRequest(r *http.Request) Viewport {
	if w, ok := parseWidth(r.URL.Query().Get(QueryParam)); ok {
		return Viewport{Width: w}
	}
	if c, err := r.Cookie(CookieName); err == nil {
		if w, ok := parseWidth(c.Value); ok {
			return Viewport{Width: w}
		}
	}
	if w, ok := parseWidth(r.Header.Get(HintHeader)); ok {
		return Viewport{Width: w}
	}
	return Viewport{}
}
