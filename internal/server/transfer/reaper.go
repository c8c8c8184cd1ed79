package transfer

import (
	"context"
	"time"
)

// scheduleReap arranges for the upload (id, seq) to be dropped if nobody has
// claimed it once the intent timeout has elapsed.
func (s *Service) scheduleReap(ctx context.Context, id string, seq uint64) {
	time.AfterFunc(s.opts.IntentTimeout, func() {
		s.drop(ctx, id, seq, "connection reaped")
	})
}

// drop removes (id, seq) if it is still pending, releases its upload and
// wakes its sender. It reports whether anything was removed.
func (s *Service) drop(ctx context.Context, id string, seq uint64, event string) bool {
	c, pending, ok := s.reg.ReapIfStale(id, seq)
	if !ok {
		return false
	}

	c.Upload.Stop()
	c.Complete()

	s.logger.Info(ctx, event, "seq", seq, "id", id, "pending", pending)
	s.notify()
	return true
}
