package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/skicka/internal/server/transfer"
)

// handleRecv claims the upload named in the path and streams it to the
// client as it arrives. A transport failure on the sender's side aborts
// the response instead of ending it cleanly. Every write is bounded by the
// chunk timeout, so a receiver that stops reading cannot pin the handler.
func (s *Server) handleRecv(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	d, err := s.transfers.Claim(ctx, chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}
	defer d.Abandon()

	if d.Name != "" {
		w.Header().Set("Content-Disposition", contentDisposition(d.Name))
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)

	rc := http.NewResponseController(w)

	// rc must not outlive the handler, so wait for the watcher on the way out.
	stop, watched := make(chan struct{}), make(chan struct{})
	go func() {
		defer close(watched)
		s.watchRelay(ctx, d, rc, stop)
	}()
	defer func() {
		close(stop)
		<-watched
	}()

	s.extendWriteDeadline(rc)
	_ = rc.Flush()

	for {
		select {
		case chunk, ok := <-d.Chunks():
			if !ok {
				return
			}
			if chunk.Err != nil {
				s.logger.Warn(ctx, "upload failed mid-transfer", "id", d.ID, "error", chunk.Err)
				panic(http.ErrAbortHandler)
			}
			s.extendWriteDeadline(rc)
			if _, err := w.Write(chunk.Data); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func (s *Server) extendWriteDeadline(rc *http.ResponseController) {
	if s.opts.ChunkTimeout > 0 {
		_ = rc.SetWriteDeadline(time.Now().Add(s.opts.ChunkTimeout))
	}
}

// watchRelay cuts a write that is still blocked once the relay has given up
// on a receiver that stopped reading.
func (s *Server) watchRelay(ctx context.Context, d *transfer.Download, rc *http.ResponseController, stop <-chan struct{}) {
	select {
	case res := <-d.Result():
		if res.Reason == transfer.ReasonSendTimeout {
			s.logger.Debug(ctx, "releasing stalled receiver", "id", d.ID, "bytes", res.Bytes)
			_ = rc.SetWriteDeadline(time.Now())
		}
	case <-stop:
	}
}
