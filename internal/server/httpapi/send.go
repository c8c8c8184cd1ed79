package httpapi

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/skicka/internal/common"
	"github.com/dmitrijs2005/skicka/internal/netx"
)

// handleSend registers the request body as a pending upload and answers with
// the code (or full link) on the first line. The response stays open until
// the paired download is resolved or the upload is dropped, so an uploader
// learns the outcome from the response closing.
func (s *Server) handleSend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	up, err := s.transfers.Open(ctx, r.URL.Query().Get(common.NameQueryParam), r.Body)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	rc := http.NewResponseController(w)

	// The body is read by the relay while this response is still being
	// written.
	if err := rc.EnableFullDuplex(); err != nil {
		s.logger.Debug(ctx, "full duplex unavailable", "error", err)
	}

	if strings.EqualFold(r.Header.Get("Expect"), "100-continue") {
		w.WriteHeader(http.StatusContinue)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, netx.ShareLink(s.opts.RemoteURL, up.ID)+common.LineTerminator)
	_ = rc.Flush()

	select {
	case <-up.Done():
	case <-ctx.Done():
		s.transfers.Withdraw(context.WithoutCancel(ctx), up)
	}

	// Unblock a relay read that may still be waiting on a stalled sender;
	// the body cannot be closed while a Read is in flight.
	_ = rc.SetReadDeadline(time.Now())
}
