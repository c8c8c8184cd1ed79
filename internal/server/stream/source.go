// Package stream turns an upload body into a lazy, single-consumption
// sequence of chunks that can be awaited with a deadline.
package stream

import (
	"errors"
	"io"
	"sync"
)

// DefaultChunkSize is the read size used when none is given.
const DefaultChunkSize = 32 * 1024

// Chunk is one piece of an upload, in arrival order. A non-nil Err marks a
// transport failure of the sender; such a chunk carries no data.
type Chunk struct {
	Data []byte
	Err  error
}

// Source reads from an io.Reader on a dedicated goroutine and hands out each
// chunk exactly once. Reading starts on the first call to Chunks.
type Source struct {
	r    io.Reader
	size int

	start  sync.Once
	stop   sync.Once
	chunks chan Chunk
	quit   chan struct{}
}

func NewSource(r io.Reader, chunkSize int) *Source {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Source{
		r:      r,
		size:   chunkSize,
		chunks: make(chan Chunk),
		quit:   make(chan struct{}),
	}
}

// Chunks returns the chunk channel. It is closed after end of stream, after a
// transport error has been delivered, or after Stop.
func (s *Source) Chunks() <-chan Chunk {
	s.start.Do(func() { go s.pump() })
	return s.chunks
}

// Stop abandons the source. A Read that is already blocked is not
// interrupted; whoever owns the underlying connection has to unblock it.
func (s *Source) Stop() {
	s.stop.Do(func() { close(s.quit) })
}

func (s *Source) pump() {
	defer close(s.chunks)

	for {
		buf := make([]byte, s.size)
		n, err := s.r.Read(buf)
		if n > 0 && !s.emit(Chunk{Data: buf[:n]}) {
			return
		}
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			s.emit(Chunk{Err: err})
			return
		}
	}
}

func (s *Source) emit(c Chunk) bool {
	select {
	case s.chunks <- c:
		return true
	case <-s.quit:
		return false
	}
}
