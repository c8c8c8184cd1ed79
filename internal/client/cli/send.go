package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

func (a *App) send(ctx context.Context, args []string, operands []string) error {
	var name string
	err := a.subFlags("send", args, []string{"-n"}, func(fs *flag.FlagSet) {
		fs.StringVar(&name, "n", "", "file name suggested to the receiver")
	})
	if err != nil {
		return err
	}
	if len(operands) > 1 {
		return fmt.Errorf("%w: send takes at most one file", ErrUsage)
	}

	var (
		body  = a.stdin
		total uint64
	)
	if len(operands) == 1 && operands[0] != "-" {
		f, err := os.Open(operands[0])
		if err != nil {
			return err
		}
		defer f.Close()

		if fi, err := f.Stat(); err == nil && fi.Mode().IsRegular() {
			total = uint64(fi.Size())
		}
		if name == "" {
			name = filepath.Base(operands[0])
		}
		body = f
	}

	p := a.newProgress("sent", total)
	err = a.client.Send(ctx, name, p.reader(body), func(link string) {
		fmt.Fprintln(a.stdout, link)
		a.hint("waiting for the receiver, run: skicka recv %s", link)
	})
	p.finish()
	if err != nil {
		return err
	}

	a.hint("transfer finished")
	return nil
}
