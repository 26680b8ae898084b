// Package logger provides the prefixed, coloured loggers used across the
// service, backed by logrus.
package logger

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

const colorReset = "\033[0m"

var ErrEmptyPrefix = errors.New("logger: prefix must not be empty")

// Logger writes "[PREFIX] [LEVEL] message" lines, with the prefix in colour.
type Logger struct {
	entry *logrus.Logger
}

// New creates a Logger that writes to out. color is an ANSI escape applied
// to the prefix; pass "" for plain output.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if strings.TrimSpace(prefix) == "" {
		return nil, ErrEmptyPrefix
	}
	if out == nil {
		return nil, errors.New("logger: nil writer")
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&prefixFormatter{prefix: strings.ToUpper(prefix), color: color})

	return &Logger{entry: l}, nil
}

func (l *Logger) Info(msg string)    { l.entry.Info(msg) }
func (l *Logger) Warning(msg string) { l.entry.Warn(msg) }
func (l *Logger) Error(msg string)   { l.entry.Error(msg) }

type prefixFormatter struct {
	prefix string
	color  string
}

func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	b.WriteString(e.Time.Format("2006/01/02 15:04:05 "))
	if f.color != "" {
		fmt.Fprintf(&b, "%s[%s]%s ", f.color, f.prefix, colorReset)
	} else {
		fmt.Fprintf(&b, "[%s] ", f.prefix)
	}
	fmt.Fprintf(&b, "[%s] %s", levelName(e.Level), e.Message)
	b.WriteByte('\n')

	return b.Bytes(), nil
}

func levelName(lvl logrus.Level) string {
	switch lvl {
	case logrus.WarnLevel:
		return "WARNING"
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return "ERROR"
	default:
		return strings.ToUpper(lvl.String())
	}
}
