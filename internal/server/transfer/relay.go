package transfer

import (
	"time"

	"github.com/dmitrijs2005/skicka/internal/server/stream"
)

// Reason explains why a relay stopped.
type Reason string

const (
	ReasonCompleted   Reason = "transfer completed"
	ReasonInterrupted Reason = "transfer interrupted"
	ReasonSizeLimit   Reason = "reached transfer size limit"
	ReasonRecvTimeout Reason = "timed out retrieving next chunk"
	ReasonSendTimeout Reason = "timed out sending current chunk"
	ReasonAbandoned   Reason = "transfer abandoned"
)

// Result is the outcome of one relay.
type Result struct {
	Reason Reason
	// Bytes counts data handed to the receiver.
	Bytes uint64
}

// relay pumps chunks from src to out in arrival order until one of the
// terminal conditions is met. Each wait, for the next chunk and for out to
// accept it, is bounded by timeout separately. A chunk that would make the
// cumulative size reach limit is not forwarded. Transport errors are
// forwarded like data so the receiving side can fail loudly.
//
// relay never closes out; its caller does.
func relay(src <-chan stream.Chunk, out chan<- stream.Chunk, gone <-chan struct{}, timeout time.Duration, limit uint64) Result {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var (
		size   uint64
		sent   uint64
		failed bool
	)

	for {
		timer.Reset(timeout)

		var (
			chunk stream.Chunk
			ok    bool
		)
		select {
		case chunk, ok = <-src:
		case <-timer.C:
			return Result{Reason: ReasonRecvTimeout, Bytes: sent}
		}

		if !ok {
			if failed {
				return Result{Reason: ReasonInterrupted, Bytes: sent}
			}
			return Result{Reason: ReasonCompleted, Bytes: sent}
		}

		if chunk.Err != nil {
			failed = true
		} else {
			size += uint64(len(chunk.Data))
			if size >= limit {
				return Result{Reason: ReasonSizeLimit, Bytes: sent}
			}
		}

		timer.Reset(timeout)

		select {
		case out <- chunk:
			sent += uint64(len(chunk.Data))
		case <-gone:
			return Result{Reason: ReasonAbandoned, Bytes: sent}
		case <-timer.C:
			return Result{Reason: ReasonSendTimeout, Bytes: sent}
		}
	}
}
