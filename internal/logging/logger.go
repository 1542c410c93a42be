// Package logging builds the logrus logger shared by the release helper.
//
// Log lines go to stderr so they never interleave with the progress lines
// printed on stdout.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultLevel keeps a normal run quiet apart from failed publishes.
const DefaultLevel = "warn"

// New returns a text logger writing to w at the named level. An empty level
// means DefaultLevel.
func New(w io.Writer, level string) (*logrus.Logger, error) {
	if strings.TrimSpace(level) == "" {
		level = DefaultLevel
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	return l, nil
}
