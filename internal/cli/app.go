package cli

import (
	"bufio"
	"context"
	"io"

	"github.com/dmitrijs2005/credstore/internal/logging"
)

// Storer is what the front end needs from the credential store.
type Storer interface {
	Register(ctx context.Context, username, password string) (bool, error)
	Login(username, password string) bool
	Delete(ctx context.Context, username string) (bool, error)
	List() []string
	Len() int
}

type App struct {
	store  Storer
	reader *bufio.Reader
	fd     int // descriptor behind reader for no-echo reads, -1 if none
	out    io.Writer
	logger logging.Logger
}

// NewApp wires s to in and out. When in is a file (os.Stdin) its descriptor
// is used for no-echo password prompts.
func NewApp(s Storer, in io.Reader, out io.Writer, logger logging.Logger) *App {
	fd := -1
	if f, ok := in.(interface{ Fd() uintptr }); ok {
		fd = int(f.Fd())
	}
	return &App{store: s, reader: bufio.NewReader(in), fd: fd, out: out, logger: logger}
}

// Run blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	a.logger.Debug(ctx, "cli started", "users", a.store.Len())
	runREPL(ctx, a, a.reader, a.out)
}
