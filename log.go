package field

import (
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

type loggerBox struct {
	logrus.FieldLogger
}

var loggerPtr atomic.Pointer[loggerBox]

func init() {
	loggerPtr.Store(&loggerBox{newNopLogger()})
}

// newNopLogger returns a logger that discards everything. Its level is set
// below Debug so that disabled log calls return before formatting.
func newNopLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// SetLogger configures the logger used by this package. By default nothing
// is logged. Passing nil restores the silent default.
//
// SetLogger is safe for concurrent use.
//
// Levels used:
//   - Debug: rebuilds of fields and grids, degenerate polygons
//   - Warn: fields disabled because their layer is missing
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(&loggerBox{l})
}

// Logger returns the current logger.
func Logger() logrus.FieldLogger {
	return loggerPtr.Load().FieldLogger
}
