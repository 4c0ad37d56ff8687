package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It writes text at info level until Init is called.
var Log = logrus.New()

// Init configures Log. format is "json" or "text"; an empty format picks text with full
// timestamps at debug level and JSON otherwise.
func Init(level, format string) error {
	return Configure(Log, os.Stdout, level, format)
}

func Configure(l *logrus.Logger, out io.Writer, level, format string) error {
	lvl := logrus.InfoLevel
	if level != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}

	l.Out = out
	l.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "":
		if lvl >= logrus.DebugLevel {
			l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		} else {
			l.SetFormatter(&logrus.JSONFormatter{})
		}
	default:
		return fmt.Errorf("invalid log format %q", format)
	}
	return nil
}
