// Package registry keeps the process-wide table of pending uploads.
//
// Every operation runs under a single mutex, which makes "one record per id"
// and "at most one successful removal per (id, seq)" hold trivially. The lock
// is never held across I/O.
package registry

import (
	"sync"

	"github.com/dmitrijs2005/skicka/internal/common"
	"github.com/dmitrijs2005/skicka/internal/server/names"
)

// Registry is the table of pending uploads, keyed by code.
type Registry struct {
	mu       sync.Mutex
	conns    map[string]*Conn
	nextSeq  uint64
	max      int
	names    names.Generator
	attempts int
}

// New returns a registry admitting at most max pending connections and
// drawing ids from gen.
func New(max int, gen names.Generator) *Registry {
	return &Registry{
		conns:    make(map[string]*Conn),
		max:      max,
		names:    gen,
		attempts: common.MaxNameAttempts,
	}
}

// Register admits c, assigns it a free id and the next sequence number and
// stores it. It returns the number of pending connections afterwards.
//
// Errors: common.ErrOverloaded when the ceiling is reached,
// common.ErrNameSpaceExhausted when no free id was found in time.
func (r *Registry) Register(c *Conn) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.tryAdmitLocked() {
		return len(r.conns), common.ErrOverloaded
	}
	if err := r.insertUniqueLocked(c); err != nil {
		return len(r.conns), err
	}
	return len(r.conns), nil
}

func (r *Registry) tryAdmitLocked() bool {
	return len(r.conns) < r.max
}

func (r *Registry) insertUniqueLocked(c *Conn) error {
	for try := 0; try < r.attempts; try++ {
		id := r.names.Next()
		if _, taken := r.conns[id]; taken {
			continue
		}
		r.nextSeq++
		c.ID = id
		c.Seq = r.nextSeq
		r.conns[id] = c
		return nil
	}
	return common.ErrNameSpaceExhausted
}

// Claim removes and returns the connection registered under id. It is the
// only way to obtain a pending upload, so at most one caller ever succeeds.
func (r *Registry) Claim(id string) (*Conn, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.conns[id]
	if !ok {
		return nil, len(r.conns), common.ErrNotFound
	}
	delete(r.conns, id)
	return c, len(r.conns), nil
}

// ReapIfStale removes the connection under id only if it is still the one
// with sequence seq. It reports the removed connection, if any.
func (r *Registry) ReapIfStale(id string, seq uint64) (*Conn, int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.conns[id]
	if !ok || c.Seq != seq {
		return nil, len(r.conns), false
	}
	delete(r.conns, id)
	return c, len(r.conns), true
}

// Len returns the number of pending connections.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.conns)
}

// Cap returns the admission ceiling.
func (r *Registry) Cap() int {
	return r.max
}
