package editor

import (
	"errors"
	"fmt"
)

// Sentinel errors for rejected commands.
var (
	// ErrQuit is returned by the X command; the caller should terminate.
	ErrQuit = errors.New("editor: quit requested")
	// ErrEmptyCommand indicates a blank or whitespace-only line.
	ErrEmptyCommand = errors.New("editor: empty command")
	// ErrLineTooLong indicates a line longer than MaxLineLength.
	ErrLineTooLong = errors.New("editor: command line too long")
	// ErrUnknownCommand indicates a command letter that is not recognised.
	ErrUnknownCommand = errors.New("editor: unknown command")
	// ErrUnexpectedParams indicates parameters passed to a zero-argument command.
	ErrUnexpectedParams = errors.New("editor: command takes no parameters")
	// ErrArity indicates the wrong number of parameters.
	ErrArity = errors.New("editor: wrong number of parameters")
	// ErrInvalidCoordinates indicates a non-numeric, non-positive or off-image coordinate.
	ErrInvalidCoordinates = errors.New("editor: invalid coordinates")
	// ErrMaxSize indicates a requested dimension above the configured maximum.
	ErrMaxSize = errors.New("editor: image too large")
	// ErrNoImage indicates a command that needs an image was issued before I.
	ErrNoImage = errors.New("editor: no image")
	// ErrBadColour indicates a colour parameter that is not a single character.
	ErrBadColour = errors.New("editor: colour must be a single character")
)

// CommandError reports a rejected command. Msg is the text shown to the user;
// Err is the sentinel describing the failure kind.
type CommandError struct {
	Cmd string
	Msg string
	Err error
}

func (e *CommandError) Error() string { return e.Msg }

func (e *CommandError) Unwrap() error { return e.Err }

func reject(cmd string, err error, format string, args ...any) *CommandError {
	return &CommandError{Cmd: cmd, Msg: fmt.Sprintf(format, args...), Err: err}
}
