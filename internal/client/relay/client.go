// Package relay is the HTTP client side of skicka: it starts uploads and
// opens downloads against a relay server.
package relay

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/skicka/internal/common"
	"github.com/dmitrijs2005/skicka/internal/netx"
)

// ErrUnexpectedStatus is returned for any status the protocol does not
// assign a meaning to.
var ErrUnexpectedStatus = errors.New("unexpected response status")

type Client struct {
	base string
	http *http.Client
}

// New returns a client for the server at base. A nil hc uses
// http.DefaultClient.
func New(base string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{base: base, http: hc}
}

// Send uploads body under the suggested name. onLink is called with the
// code (or full link) as soon as the server assigns one; Send then blocks
// until the server closes the upload, which happens once the receiver has
// finished or the upload was dropped.
func (c *Client) Send(ctx context.Context, name string, body io.Reader, onLink func(string)) error {
	u, err := netx.UploadURL(c.base, name)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	// lets the server refuse before any payload is sent
	req.Header.Set("Expect", "100-continue")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}

	br := bufio.NewReader(resp.Body)
	line, err := br.ReadString('\n')
	if err != nil {
		return fmt.Errorf("read link: %w", err)
	}
	if onLink != nil {
		onLink(strings.TrimRight(line, common.LineTerminator))
	}

	if _, err := io.Copy(io.Discard, br); err != nil {
		return fmt.Errorf("wait for receiver: %w", err)
	}
	return nil
}

// Download is an open download. Body must be closed by the caller.
type Download struct {
	// Name is the file name suggested by the uploader, if any.
	Name string
	Body io.ReadCloser
}

// Open claims the upload identified by a code or a full link.
func (c *Client) Open(ctx context.Context, codeOrLink string) (*Download, error) {
	u, err := netx.DownloadURL(c.base, codeOrLink)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, statusError(resp)
	}

	return &Download{
		Name: fileName(resp.Header.Get("Content-Disposition")),
		Body: resp.Body,
	}, nil
}

func fileName(disposition string) string {
	if disposition == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}

// statusError maps the relay's error statuses back to the shared sentinels.
func statusError(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusServiceUnavailable:
		return common.ErrOverloaded
	case http.StatusNotFound:
		return common.ErrNotFound
	case http.StatusRequestEntityTooLarge:
		return common.ErrRequestTooLarge
	}

	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("%w: %s: %s", ErrUnexpectedStatus, resp.Status, strings.TrimSpace(string(msg)))
}
