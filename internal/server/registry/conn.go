package registry

import (
	"sync"

	"github.com/dmitrijs2005/skicka/internal/server/stream"
)

// Conn is a pending upload. ID and Seq are assigned by Registry.Register.
// Once a Conn leaves the registry, the party that removed it owns Upload
// and is responsible for calling Complete.
type Conn struct {
	ID     string
	Seq    uint64
	Name   string
	Upload *stream.Source

	done chan struct{}
	once sync.Once
}

// NewConn wraps an upload. name is the client-suggested file name and may be empty.
func NewConn(name string, upload *stream.Source) *Conn {
	return &Conn{
		Name:   name,
		Upload: upload,
		done:   make(chan struct{}),
	}
}

// Done is closed once the transfer has been resolved, successfully or not.
func (c *Conn) Done() <-chan struct{} {
	return c.done
}

// Complete fires the completion signal. Only the first call has an effect.
func (c *Conn) Complete() {
	c.once.Do(func() { close(c.done) })
}
