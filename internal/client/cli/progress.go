package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
)

const progressInterval = 200 * time.Millisecond

// progress renders a byte counter on stderr. It is a no-op unless stderr
// is a terminal and the CLI is not quiet.
type progress struct {
	w       io.Writer
	label   string
	total   uint64
	enabled bool

	mu       sync.Mutex
	n        uint64
	last     time.Time
	rendered bool
	now      func() time.Time
}

func (a *App) newProgress(label string, total uint64) *progress {
	return &progress{
		w:       a.stderr,
		label:   label,
		total:   total,
		enabled: a.tty && !a.config.Quiet,
		now:     time.Now,
	}
}

func (p *progress) add(n int) {
	if n <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.n += uint64(n)
	if !p.enabled {
		return
	}
	if now := p.now(); now.Sub(p.last) >= progressInterval {
		p.last = now
		p.renderLocked()
	}
}

func (p *progress) renderLocked() {
	p.rendered = true
	if p.total > 0 {
		pct := p.n * 100 / p.total
		fmt.Fprintf(p.w, "\r%s %s / %s (%d%%)", p.label, humanize.Bytes(p.n), humanize.Bytes(p.total), pct)
		return
	}
	fmt.Fprintf(p.w, "\r%s %s", p.label, humanize.Bytes(p.n))
}

// finish prints the final count and ends the line.
func (p *progress) finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || (!p.rendered && p.n == 0) {
		return
	}
	p.renderLocked()
	fmt.Fprintln(p.w)
}

func (p *progress) bytes() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.n
}

func (p *progress) reader(r io.Reader) io.Reader {
	return &progressReader{r: r, p: p}
}

type progressReader struct {
	r io.Reader
	p *progress
}

func (pr *progressReader) Read(b []byte) (int, error) {
	n, err := pr.r.Read(b)
	pr.p.add(n)
	return n, err
}
