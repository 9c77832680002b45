package http

import (
	"net/http"

	"github.com/MKhiriev/coffee-notes/internal/logger"
)

// getServerVersion answers GET /api/version with the plain-text build version
// the board shows in its info overlay.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(version)); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getServerVersion").Msg("error writing version")
	}
}
