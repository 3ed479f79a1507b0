package logger

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	appLogger *logrus.Logger
	once      sync.Once
)

// Init configures the application logger. Level is one of
// trace/debug/info/warn/error, format is "json" or "text". Safe to call
// more than once; only the first call wins.
func Init(level, format string) *logrus.Logger {
	once.Do(func() {
		l := logrus.New()
		l.SetOutput(os.Stdout)

		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			lvl = logrus.InfoLevel
		}
		l.SetLevel(lvl)

		if format == "json" {
			l.SetFormatter(&logrus.JSONFormatter{})
		} else {
			l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		}
		appLogger = l
	})
	return appLogger
}

// Get returns the application logger, initializing it with defaults if
// Init was never called (tests, scripts).
func Get() *logrus.Logger {
	if appLogger == nil {
		return Init("info", "text")
	}
	return appLogger
}
