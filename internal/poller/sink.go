package poller

import (
	"fmt"
	"strings"
	"time"

	"github.com/nais/jaws-deploy/internal/jaws"
	"github.com/sirupsen/logrus"
)

// LogSink receives deployment log entries in the order the server returned them.
// Implementations must not fail; a broken sink never stops a poll.
type LogSink interface {
	Emit(entry jaws.LogEntry)
}

// SinkFunc adapts a function to a LogSink.
type SinkFunc func(entry jaws.LogEntry)

func (f SinkFunc) Emit(entry jaws.LogEntry) {
	f(entry)
}

type Channel int

const (
	ChannelInfo Channel = iota
	ChannelWarning
	ChannelError
)

func (c Channel) String() string {
	switch c {
	case ChannelError:
		return "error"
	case ChannelWarning:
		return "warning"
	default:
		return "info"
	}
}

// ChannelFor maps a deployment log level onto an output channel. Unknown levels are informational.
func ChannelFor(level string) Channel {
	switch {
	case strings.EqualFold(level, jaws.LevelError), strings.EqualFold(level, jaws.LevelCritical):
		return ChannelError
	case strings.EqualFold(level, jaws.LevelWarning):
		return ChannelWarning
	default:
		return ChannelInfo
	}
}

// FormatEntry renders an entry as "[<level>] <message>".
func FormatEntry(entry jaws.LogEntry) string {
	return fmt.Sprintf("[%s] %s", entry.Level, entry.Message)
}

type LogrusSink struct {
	log logrus.FieldLogger
}

func NewLogrusSink(log logrus.FieldLogger) *LogrusSink {
	return &LogrusSink{log: log}
}

func (s *LogrusSink) Emit(entry jaws.LogEntry) {
	log := s.log.WithField("timestamp", entry.TimestampUTC.UTC().Format(time.RFC3339Nano))
	msg := FormatEntry(entry)

	switch ChannelFor(entry.Level) {
	case ChannelError:
		log.Error(msg)
	case ChannelWarning:
		log.Warn(msg)
	default:
		log.Info(msg)
	}
}
