package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dmitrijs2005/skicka/internal/buildinfo"
	"github.com/dmitrijs2005/skicka/internal/client/config"
	"github.com/dmitrijs2005/skicka/internal/client/relay"
	"github.com/dmitrijs2005/skicka/internal/flagx"
)

// ErrUsage is returned when the command line cannot be understood.
var ErrUsage = errors.New("invalid usage")

// Flags that consume the next argument, global and per subcommand.
var valueFlags = []string{"-a", "-c", "-config", "-n", "-o"}

const usage = `usage:
  skicka [-a server] [-q] send [-n name] [file]
  skicka [-a server] [-q] recv [-o path] <code-or-link>
  skicka version
`

type App struct {
	config *config.Config
	client *relay.Client
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	tty    bool
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		client: relay.New(c.ServerURL, nil),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		tty:    term.IsTerminal(int(os.Stderr.Fd())),
	}
}

// Run executes the subcommand found in args (os.Args[1:] without the
// program name).
func (a *App) Run(ctx context.Context, args []string) error {
	pos := flagx.Positional(args, valueFlags)
	if len(pos) == 0 {
		fmt.Fprint(a.stderr, usage)
		return ErrUsage
	}

	var err error
	switch pos[0] {
	case "send":
		err = a.send(ctx, args, pos[1:])
	case "recv", "receive":
		err = a.recv(ctx, args, pos[1:])
	case "version":
		buildinfo.PrintBuildData(a.stdout)
	case "help":
		fmt.Fprint(a.stdout, usage)
	default:
		err = fmt.Errorf("%w: unknown command %q", ErrUsage, pos[0])
	}

	if errors.Is(err, ErrUsage) {
		fmt.Fprint(a.stderr, usage)
	}
	return err
}

// subFlags parses the subcommand flags out of the full argument list.
func (a *App) subFlags(name string, args []string, names []string, define func(fs *flag.FlagSet)) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	define(fs)
	if err := fs.Parse(flagx.FilterArgs(args, names)); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}

// hint prints a human-facing note on stderr unless quiet.
func (a *App) hint(format string, args ...any) {
	if a.config.Quiet {
		return
	}
	fmt.Fprintf(a.stderr, format+"\n", args...)
}
