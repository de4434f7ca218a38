package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level is a verbosity threshold. Debug is the most verbose.
type Level logging.Level

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var (
	leveledBackend logging.LeveledBackend
	currentLevel   = Notice
)

// Logger is satisfied by *logging.Logger. Renderer packages take a Logger so
// tests can pass their own.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns the logger for module. All modules write to the same sink.
func New(module string) Logger {
	return logging.MustGetLogger(module)
}

// SetSink redirects output; the level set by SetLevel survives the switch.
func SetSink(sink io.Writer) {
	backend := logging.NewLogBackend(sink, "", 0)
	leveledBackend = logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	logging.SetBackend(leveledBackend)
	SetLevel(currentLevel)
}

func SetLevel(level Level) {
	currentLevel = level
	leveledBackend.SetLevel(level.toBackend(), "")
}

// LevelFromVerbosity maps -v to Info and -vv (or more) to Debug.
func LevelFromVerbosity(count int) Level {
	switch {
	case count >= 2:
		return Debug
	case count == 1:
		return Info
	default:
		return Notice
	}
}

func (l Level) toBackend() logging.Level {
	switch l {
	case Debug:
		return logging.DEBUG
	case Info:
		return logging.INFO
	case Warning:
		return logging.WARNING
	case Error:
		return logging.ERROR
	default:
		return logging.NOTICE
	}
}

func init() {
	SetSink(os.Stdout)
}
