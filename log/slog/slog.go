package slog

import (
	"context"
	stdslog "log/slog"

	"github.com/unkn0wn-root/b64frame"
)

var _ b64frame.Logger = Logger{}

type Logger struct{ L *stdslog.Logger }

// New groups codec attributes under "b64frame".
func New(l *stdslog.Logger) Logger { return Logger{L: l.WithGroup("b64frame")} }

func (s Logger) Debug(msg string, f b64frame.Fields) { s.log(stdslog.LevelDebug, msg, f) }
func (s Logger) Info(msg string, f b64frame.Fields)  { s.log(stdslog.LevelInfo, msg, f) }
func (s Logger) Warn(msg string, f b64frame.Fields)  { s.log(stdslog.LevelWarn, msg, f) }
func (s Logger) Error(msg string, f b64frame.Fields) { s.log(stdslog.LevelError, msg, f) }

func (s Logger) log(level stdslog.Level, msg string, f b64frame.Fields) {
	ctx := context.Background()
	if !s.L.Enabled(ctx, level) {
		return
	}
	s.L.LogAttrs(ctx, level, msg, attrs(f)...)
}

func attrs(f b64frame.Fields) []stdslog.Attr {
	if len(f) == 0 {
		return nil
	}
	out := make([]stdslog.Attr, 0, len(f))
	for k, v := range f {
		out = append(out, stdslog.Any(k, v))
	}
	return out
}
