package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/dmitrijs2005/skicka/internal/filex"
)

func (a *App) recv(ctx context.Context, args []string, operands []string) error {
	var out string
	err := a.subFlags("recv", args, []string{"-o"}, func(fs *flag.FlagSet) {
		fs.StringVar(&out, "o", "", "output file or directory, stdout by default")
	})
	if err != nil {
		return err
	}
	if len(operands) != 1 {
		return fmt.Errorf("%w: recv needs exactly one code", ErrUsage)
	}
	code := operands[0]

	d, err := a.client.Open(ctx, code)
	if err != nil {
		return err
	}
	defer d.Body.Close()

	f, err := a.destination(out, d.Name, code)
	if err != nil {
		return err
	}

	var w io.Writer = a.stdout
	if f != nil {
		w = f
	}

	p := a.newProgress("received", 0)
	_, err = io.Copy(w, p.reader(d.Body))
	p.finish()

	if f == nil {
		return err
	}

	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(f.Name())
		return fmt.Errorf("download incomplete: %w", err)
	}

	a.hint("saved %s (%s)", f.Name(), humanize.Bytes(p.bytes()))
	return nil
}

// destination opens the file the download goes to, or returns nil for
// stdout. Into a directory the sender's file name is used, made safe and
// unique.
func (a *App) destination(out, suggested, code string) (*os.File, error) {
	if out == "" || out == "-" {
		return nil, nil
	}

	if !isDir(out) {
		return os.Create(out)
	}

	dir, err := filex.EnsureDir(out)
	if err != nil {
		return nil, err
	}
	fallback := filex.SafeName(path.Base(strings.TrimRight(code, "/")), "download")
	return filex.CreateUnique(dir, filex.SafeName(suggested, fallback))
}

func isDir(p string) bool {
	if strings.HasSuffix(p, "/") || strings.HasSuffix(p, string(os.PathSeparator)) {
		return true
	}
	fi, err := os.Stat(p)
	if err != nil {
		return false
	}
	return fi.IsDir()
}
