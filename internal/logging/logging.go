// Package logging provides the topic-based logger used outside the API client.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kyokomi/emoji"
	"github.com/sirupsen/logrus"
)

// Logger writes topic-prefixed, printf-style messages.
type Logger interface {
	Debug(topic string, format string, args ...interface{})
	Info(topic string, format string, args ...interface{})
	Warning(topic string, format string, args ...interface{})
	Error(topic string, format string, args ...interface{})
	Critical(topic string, format string, args ...interface{})
}

var (
	_ Logger = &Logrus{}
	_ Logger = Nop{}
)

// Logrus is a Logger backed by logrus.
type Logrus struct {
	logger *logrus.Logger
}

// NewLogrus builds a Logrus writing to out. Unknown levels keep logrus' default.
func NewLogrus(level string, out io.Writer) *Logrus {
	customFormatter := new(logrus.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	customFormatter.DisableColors = true

	log := logrus.New()
	log.Out = out
	log.SetFormatter(customFormatter)

	lv, err := logrus.ParseLevel(level)
	if err == nil {
		log.SetLevel(lv)
	}

	return &Logrus{logger: log}
}

// OpenFile opens (or creates) path for appending log output.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func (l *Logrus) Debug(topic string, format string, args ...interface{}) {
	l.logger.Debug(topic + ": " + emoji.Sprintf(format, args...))
}

func (l *Logrus) Info(topic string, format string, args ...interface{}) {
	l.logger.Info(topic + ": " + emoji.Sprintf(format, args...))
}

func (l *Logrus) Warning(topic string, format string, args ...interface{}) {
	l.logger.Warning(topic + ": " + emoji.Sprintf(format, args...))
}

func (l *Logrus) Error(topic string, format string, args ...interface{}) {
	l.logger.Error(topic + ": " + emoji.Sprintf(format, args...))
}

func (l *Logrus) Critical(topic string, format string, args ...interface{}) {
	l.logger.Error(topic + ": " + emoji.Sprintf(format, args...))
}

// Nop discards everything.
type Nop struct{}

func (Nop) Debug(topic string, format string, args ...interface{})    {}
func (Nop) Info(topic string, format string, args ...interface{})     {}
func (Nop) Warning(topic string, format string, args ...interface{})  {}
func (Nop) Error(topic string, format string, args ...interface{})    {}
func (Nop) Critical(topic string, format string, args ...interface{}) {}
