package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogger sends diagnostics to stderr so they never mix with the menu
// on stdout. An unparsable level falls back to info.
func SetupLogger(level string) {
	setup(os.Stderr, level)
}

func setup(out io.Writer, level string) {
	logrus.SetOutput(out)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
		logrus.SetLevel(lvl)
		logrus.WithField("level", level).Warn("unknown log level, using info")
		return
	}
	logrus.SetLevel(lvl)
}
