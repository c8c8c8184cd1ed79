// Package httpapi exposes the relay over HTTP:
//
//	GET  /       motto
//	POST /       start an upload (PUT is accepted too), ?name= suggests a file name
//	GET  /{id}   download the upload registered under id
package httpapi

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/skicka/internal/logging"
	"github.com/dmitrijs2005/skicka/internal/server/transfer"
)

// transfers is the part of transfer.Service the handlers depend on.
type transfers interface {
	Open(ctx context.Context, name string, body io.Reader) (*transfer.Upload, error)
	Withdraw(ctx context.Context, u *transfer.Upload) bool
	Claim(ctx context.Context, id string) (*transfer.Download, error)
}

// Options configures the HTTP boundary. ChunkTimeout bounds each write to a
// receiver; zero leaves writes unbounded.
type Options struct {
	RemoteURL        string
	Motto            string
	MaxRequestLength int
	ChunkTimeout     time.Duration
}

// Server serves the upload, download and index routes.
type Server struct {
	transfers transfers
	opts      Options
	logger    logging.Logger
}

func NewServer(t transfers, opts Options, l logging.Logger) *Server {
	return &Server{
		transfers: t,
		opts:      opts,
		logger:    l.With("module", "http_server"),
	}
}

// Handler returns the router with all routes and middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(s.limitRequestLength)

	r.Get("/", s.handleIndex)
	r.Post("/", s.handleSend)
	r.Put("/", s.handleSend)
	r.Get("/{id}", s.handleRecv)

	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, s.opts.Motto)
}
