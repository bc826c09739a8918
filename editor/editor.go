package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pixgrid/pixelgrid"
	"github.com/sirupsen/logrus"
)

// MaxLineLength is the longest command line, in bytes, that Do will parse.
const MaxLineLength = 4096

// Editor owns the current image and dispatches commands against it.
type Editor struct {
	grid    *pixelgrid.Grid
	maxSize int
	log     logrus.FieldLogger
}

// New returns an Editor with no image.
// Defaults: DefaultMaxSize and a logger that discards output.
func New(opts ...Option) *Editor {
	e := &Editor{
		maxSize: DefaultMaxSize,
		log:     discardLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Grid returns the current image, or nil before the first I command.
func (e *Editor) Grid() *pixelgrid.Grid {
	return e.grid
}

// Do parses and runs one command line.
// It returns the text to display (possibly empty) or an error: ErrQuit for X,
// a *CommandError for any rejected command.
func (e *Editor) Do(line string) (string, error) {
	var (
		name string
		args []Arg
		out  string
		err  error
	)
	if len(line) > MaxLineLength {
		err = reject("", ErrLineTooLong, "Command too long (limit %d characters)", MaxLineLength)
	} else {
		name, args = Parse(line)
		out, err = e.dispatch(name, args)
	}

	var cerr *CommandError
	switch {
	case errors.As(err, &cerr):
		e.log.WithField("cmd", name).WithError(cerr.Err).Info("command rejected")
	case err == nil:
		e.log.WithField("cmd", name).WithField("args", len(args)).Debug("command done")
	}
	return out, err
}

func (e *Editor) dispatch(name string, args []Arg) (string, error) {
	if name == "" {
		return "", reject(name, ErrEmptyCommand, "Please enter a valid command")
	}
	if name == helpCmd {
		return e.Help(), nil
	}
	cmd, ok := commands[name]
	if !ok {
		return "", reject(name, ErrUnknownCommand, "'%s' is not valid, try '%s'", name, helpCmd)
	}
	switch {
	case cmd.arity == 0 && len(args) > 0:
		return "", reject(name, ErrUnexpectedParams, "'%s' does not take parameters.", name)
	case len(args) != cmd.arity:
		return "", reject(name, ErrArity, "'%s' takes %d parameters.", name, cmd.arity)
	}
	return cmd.run(e, args)
}

// Help lists every command as "usage: description", one per line.
func (e *Editor) Help() string {
	var sb strings.Builder
	for _, name := range commandOrder {
		cmd := commands[name]
		fmt.Fprintf(&sb, "%s: %s\n", cmd.usage, cmd.desc)
	}
	fmt.Fprintf(&sb, "%s: %s\n", helpCmd, "Show this list")
	return sb.String()
}

// Banner is the greeting shown when a session starts.
func (e *Editor) Banner() string {
	return "Welcome to the graphical editor\n\n" + e.Help() + "\nPlease enter a command\n"
}
