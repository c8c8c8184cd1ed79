package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/skicka/internal/common"
)

// writeError turns a relay error into a plain-text status response.
func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status, msg := http.StatusInternalServerError, "internal error"

	switch {
	case errors.Is(err, common.ErrOverloaded):
		status, msg = http.StatusServiceUnavailable, "server overloaded, please try again later"
	case errors.Is(err, common.ErrNotFound):
		status, msg = http.StatusNotFound, "no such connection found"
	case errors.Is(err, common.ErrRequestTooLarge):
		status, msg = http.StatusRequestEntityTooLarge, "request too large"
	default:
		s.logger.Error(ctx, err.Error())
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, msg+common.LineTerminator)
}
