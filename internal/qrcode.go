package internal

import (
	"fmt"
	"net/http"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const qrCodeSize = 256

// qrCodePaths are the pages a QR code may point at.
var qrCodePaths = map[string]bool{
	"/":        true,
	"/results": true,
	"/cup":     true,
}

func (a *Application) baseURL(r *http.Request) string {
	if a.Config.Domain != "" {
		return strings.TrimSuffix(a.Config.Domain, "/")
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, r.Host)
}

func (a *Application) getPageQRCodeImage(r *http.Request, path string) ([]byte, error) {
	return qrcode.Encode(a.baseURL(r)+path, qrcode.Medium, qrCodeSize)
}

// HandleQRCode serves a PNG QR code that links to one of the pages, for
// printing and posting at the finish.
func (a *Application) HandleQRCode(w http.ResponseWriter, r *http.Request) {
	log := a.requestLog(r).With().Str("action", "qr_code").Logger()

	path := r.URL.Query().Get("path")
	if path == "" {
		path = "/results"
	}
	if !qrCodePaths[path] {
		log.Warn().Str("path", path).Msg("refusing QR code for unknown page")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	png, err := a.getPageQRCodeImage(r, path)
	if err != nil {
		log.Err(err).Msg("failed to encode QR code")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
