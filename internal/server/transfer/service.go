// Package transfer pairs uploads with downloads and relays bytes between
// them. It owns the intent timer of every pending upload and the relay loop
// of every claimed one.
package transfer

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/dmitrijs2005/skicka/internal/common"
	"github.com/dmitrijs2005/skicka/internal/logging"
	"github.com/dmitrijs2005/skicka/internal/server/registry"
	"github.com/dmitrijs2005/skicka/internal/server/stream"
)

// Options tunes the pairing and relay behavior.
type Options struct {
	IntentTimeout   time.Duration
	ChunkTimeout    time.Duration
	MaxTransferSize uint64
	ChunkSize       int
}

// Service pairs uploads with downloads and runs their relays.
type Service struct {
	reg    *registry.Registry
	opts   Options
	logger logging.Logger

	mu        sync.Mutex
	observers []func()
}

func NewService(reg *registry.Registry, opts Options, l logging.Logger) *Service {
	return &Service{
		reg:    reg,
		opts:   opts,
		logger: l.With("module", "transfer"),
	}
}

// Upload is the sender's handle on a registered connection.
type Upload struct {
	ID   string
	Seq  uint64
	done <-chan struct{}
}

// Done is closed when the paired download has finished, failed, or the
// upload was dropped before anyone claimed it.
func (u *Upload) Done() <-chan struct{} {
	return u.done
}

// Download is the receiver's handle on a claimed connection.
type Download struct {
	ID   string
	Name string

	chunks <-chan stream.Chunk
	gone   chan struct{}
	once   sync.Once
	result chan Result
}

// Chunks delivers the relayed data. It is closed when the relay stops.
func (d *Download) Chunks() <-chan stream.Chunk {
	return d.chunks
}

// Abandon tells the relay the receiver is gone. Safe to call more than once
// and after the relay has finished.
func (d *Download) Abandon() {
	d.once.Do(func() { close(d.gone) })
}

// Result delivers the relay outcome once.
func (d *Download) Result() <-chan Result {
	return d.result
}

// Open registers body as a pending upload and starts its intent timer.
// The returned error matches common.ErrOverloaded when the upload is rejected.
func (s *Service) Open(ctx context.Context, name string, body io.Reader) (*Upload, error) {
	c := registry.NewConn(name, stream.NewSource(body, s.opts.ChunkSize))

	pending, err := s.reg.Register(c)
	if err != nil {
		reason := "too many active connections"
		if errors.Is(err, common.ErrNameSpaceExhausted) {
			reason = "failed to generate name"
		}
		s.logger.Warn(ctx, "connection rejected", "reason", reason, "pending", pending)
		return nil, err
	}

	s.logger.Info(ctx, "connection created", "seq", c.Seq, "id", c.ID, "pending", pending)
	s.scheduleReap(context.WithoutCancel(ctx), c.ID, c.Seq)
	s.notify()

	return &Upload{ID: c.ID, Seq: c.Seq, done: c.Done()}, nil
}

// Withdraw drops an upload whose sender went away before it was claimed.
// It is a no-op once the upload has been claimed or reaped.
func (s *Service) Withdraw(ctx context.Context, u *Upload) bool {
	return s.drop(ctx, u.ID, u.Seq, "connection withdrawn")
}

// Claim takes exclusive ownership of the upload registered under id and
// starts relaying it. The error matches common.ErrNotFound if there is no
// such pending upload.
func (s *Service) Claim(ctx context.Context, id string) (*Download, error) {
	c, pending, err := s.reg.Claim(id)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "connection fused", "seq", c.Seq, "id", c.ID, "pending", pending)
	s.notify()

	out := make(chan stream.Chunk, 1)
	d := &Download{
		ID:     c.ID,
		Name:   c.Name,
		chunks: out,
		gone:   make(chan struct{}),
		result: make(chan Result, 1),
	}

	go s.run(context.WithoutCancel(ctx), c, d, out)

	return d, nil
}

func (s *Service) run(ctx context.Context, c *registry.Conn, d *Download, out chan stream.Chunk) {
	res := relay(c.Upload.Chunks(), out, d.gone, s.opts.ChunkTimeout, s.opts.MaxTransferSize)

	c.Upload.Stop()
	close(out)
	c.Complete()

	s.logger.Info(ctx, "connection closed",
		"seq", c.Seq,
		"id", c.ID,
		"reason", string(res.Reason),
		"bytes", res.Bytes,
		"size", humanize.Bytes(res.Bytes),
		"pending", s.reg.Len(),
	)

	d.result <- res
}

// Pending returns the number of uploads waiting for a receiver.
func (s *Service) Pending() int {
	return s.reg.Len()
}

// Capacity returns the pending-upload ceiling.
func (s *Service) Capacity() int {
	return s.reg.Cap()
}

// OnChange registers f to be called after every change of the pending set.
// Calls may run concurrently; f should read current state rather than
// rely on call order.
func (s *Service) OnChange(f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, f)
}

func (s *Service) notify() {
	s.mu.Lock()
	observers := s.observers
	s.mu.Unlock()

	for _, f := range observers {
		f()
	}
}
