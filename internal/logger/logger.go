package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// CreateLogger builds the process logger. Unknown levels fall back to info
// and any format other than json is rendered as text.
func CreateLogger(serviceName, level, format string) logrus.FieldLogger {
	return createLogger(os.Stderr, serviceName, level, format)
}

func createLogger(out io.Writer, serviceName, level, format string) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(out)

	if strings.EqualFold(format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	return l.WithField("service", serviceName)
}
