package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/skicka/internal/common"
	"github.com/dmitrijs2005/skicka/internal/logging"
)

const maxRequestIDLength = 64

// requestID tags every request with an id, reusing a sane inbound one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(common.RequestIDHeaderName)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		w.Header().Set(common.RequestIDHeaderName, id)
		next.ServeHTTP(w, r.WithContext(logging.WithRequestID(r.Context(), id)))
	})
}

// accessLog records one line per request once it has been fully served.
// Uploads and downloads are long-lived, so the duration covers the transfer.
func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			s.logger.Debug(r.Context(), "request served",
				"method", r.Method,
				"path", r.URL.Path,
				"remote", r.RemoteAddr,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

// limitRequestLength rejects overly long request URIs before any registry
// interaction.
func (s *Server) limitRequestLength(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.opts.MaxRequestLength > 0 && len(r.URL.RequestURI()) > s.opts.MaxRequestLength {
			s.writeError(r.Context(), w, common.ErrRequestTooLarge)
			return
		}
		next.ServeHTTP(w, r)
	})
}
