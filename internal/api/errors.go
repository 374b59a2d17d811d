package api

import (
	"errors"
	"net/http"

	"github.com/vmunix/scoutarr/internal/clients"
	"github.com/vmunix/scoutarr/internal/media"
	"github.com/vmunix/scoutarr/internal/settings"
	"github.com/vmunix/scoutarr/internal/tmdb"
	"github.com/vmunix/scoutarr/internal/watchlist"
	"github.com/vmunix/scoutarr/pkg/arr"
)

// writeServiceError maps domain errors onto HTTP status codes. Timeouts
// from upstream services become 504, other upstream failures 503; the
// caller's own mistakes (bad type, unconfigured service) stay in the
// 4xx range.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, media.ErrInvalidType):
		writeError(w, http.StatusBadRequest, "INVALID_TYPE", err.Error())
	case errors.Is(err, clients.ErrNotConfigured):
		writeError(w, http.StatusBadRequest, "NOT_CONFIGURED", err.Error())
	case errors.Is(err, tmdb.ErrNotFound),
		errors.Is(err, arr.ErrNotFound),
		errors.Is(err, watchlist.ErrNotFound),
		errors.Is(err, settings.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, arr.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "ALREADY_EXISTS", err.Error())
	default:
		var cfgErr *arr.ConfigError
		if errors.As(err, &cfgErr) {
			writeError(w, http.StatusBadRequest, "SERVICE_MISCONFIGURED", err.Error())
			return
		}
		var reqErr *arr.RequestError
		if errors.As(err, &reqErr) {
			if reqErr.Timeout() {
				writeError(w, http.StatusGatewayTimeout, "UPSTREAM_TIMEOUT", err.Error())
				return
			}
			writeError(w, http.StatusServiceUnavailable, "UPSTREAM_ERROR", err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "INTERNAL", err.Error())
	}
}
