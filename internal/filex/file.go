// Package filex creates download destinations without clobbering existing
// files.
package filex

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const maxUniqueAttempts = 1000

// EnsureDir creates dir (relative to the working directory unless absolute)
// and returns its absolute path.
func EnsureDir(dirName string) (string, error) {
	dir := dirName
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dirName)
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// SafeName reduces a name suggested by a remote party to a plain base name.
// Path separators of either flavor are stripped, and names that would
// refer to a directory fall back to fallback.
func SafeName(name, fallback string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = filepath.Base(filepath.FromSlash(name))
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)

	switch name {
	case "", ".", "..", string(filepath.Separator):
		return fallback
	}
	return name
}

// CreateUnique creates a new file named name in dir. When the name is
// taken it tries "stem (1).ext", "stem (2).ext" and so on. The file is
// opened exclusively, so an existing file is never truncated.
func CreateUnique(dir, name string) (*os.File, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for i := 0; i < maxUniqueAttempts; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, i, ext)
		}

		f, err := os.OpenFile(filepath.Join(dir, candidate), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("no free file name for %q in %s", name, dir)
}
