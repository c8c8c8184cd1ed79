// Package netx builds and resolves the links exchanged between uploaders
// and downloaders.
package netx

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ShareLink returns what an uploader is shown: the bare id, or remote/id
// when the server knows its public URL.
func ShareLink(remote, id string) string {
	if remote == "" {
		return id
	}
	return strings.TrimSuffix(remote, "/") + "/" + id
}

// UploadURL returns the endpoint for starting an upload. name, when not
// empty, is passed as the suggested file name.
func UploadURL(base, name string) (string, error) {
	u, err := parseBase(base)
	if err != nil {
		return "", err
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/"
	if name != "" {
		u.RawQuery = url.Values{"name": {name}}.Encode()
	}
	return u.String(), nil
}

// DownloadURL resolves what a receiver typed: either a full link printed by
// a server with a configured remote URL, or a bare code relative to base.
func DownloadURL(base, codeOrLink string) (string, error) {
	codeOrLink = strings.TrimSpace(codeOrLink)
	if codeOrLink == "" {
		return "", errors.New("empty code")
	}

	if strings.HasPrefix(codeOrLink, "http://") || strings.HasPrefix(codeOrLink, "https://") {
		u, err := url.Parse(codeOrLink)
		if err != nil {
			return "", fmt.Errorf("invalid link %q: %w", codeOrLink, err)
		}
		return u.String(), nil
	}

	u, err := parseBase(base)
	if err != nil {
		return "", err
	}
	return u.JoinPath(codeOrLink).String(), nil
}

func parseBase(base string) (*url.URL, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", base, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server URL %q: scheme must be http or https", base)
	}
	return u, nil
}
