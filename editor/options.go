package editor

import (
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultMaxSize is the largest width or height accepted by I.
const DefaultMaxSize = 250

// Option configures an Editor via functional arguments.
type Option func(*Editor)

// WithLogger sets the logger used for command tracing. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Editor) {
		if l != nil {
			e.log = l
		}
	}
}

// WithMaxSize overrides DefaultMaxSize. Values below 1 are ignored.
func WithMaxSize(n int) Option {
	return func(e *Editor) {
		if n >= 1 {
			e.maxSize = n
		}
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
