// Package logger renders slog records as single colored console lines.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorPurple = "\033[35m"
	colorWhite  = "\033[37m"
)

type LogType string

const (
	TypeCommand LogType = "CMD"
	TypeDB      LogType = "DB"
	TypeGame    LogType = "GAME"
	TypeSystem  LogType = "SYS"
	TypeError   LogType = "ERR"
)

var logTypes = map[string]LogType{
	"cmd":   TypeCommand,
	"db":    TypeDB,
	"game":  TypeGame,
	"sys":   TypeSystem,
	"error": TypeError,
}

// noisy are library debug messages that drown out the bot's own logs.
var noisy = []string{
	"locking buckets",
	"unlocking buckets",
	"gateway event",
	"cleaning up bucket",
	"cleaned up rate limit buckets",
	"binary message received",
	"received gateway message",
	"locking gateway rate limiter",
	"unlocking gateway rate limiter",
	"sending gateway command",
	"new request",
	"new response",
	"locking rest bucket",
	"unlocking rest bucket",
	"rate limit response headers",
	"sending heartbeat",
}

// hidden attributes are folded into the message instead of listed.
var hidden = map[string]bool{
	"type":      true,
	"name":      true,
	"user_name": true,
	"status":    true,
	"took":      true,
	"error":     true,
}

type Handler struct {
	w     io.Writer
	mu    *sync.Mutex
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewHandler writes to w, or stdout when w is nil.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	if w == nil {
		w = os.Stdout
	}
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{w: w, mu: &sync.Mutex{}, level: level}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	c.attrs = append(c.attrs, h.attrs...)
	for _, a := range attrs {
		c.attrs = append(c.attrs, h.qualify(a))
	}
	return &c
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	if c.group != "" {
		c.group += "."
	}
	c.group += name
	return &c
}

// qualify prefixes the group name. Hidden keys keep their bare names.
func (h *Handler) qualify(a slog.Attr) slog.Attr {
	if h.group != "" && !hidden[a.Key] {
		a.Key = h.group + "." + a.Key
	}
	return a
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	if skip(r.Message) {
		return nil
	}

	attrs := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	attrs = append(attrs, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, h.qualify(a))
		return true
	})
	find := func(key string) (slog.Value, bool) {
		for _, a := range attrs {
			if a.Key == key {
				return a.Value, true
			}
		}
		return slog.Value{}, false
	}

	logType := TypeSystem
	if v, ok := find("type"); ok {
		if t, ok := logTypes[v.String()]; ok {
			logType = t
		}
	}

	var sb strings.Builder
	sb.WriteString(r.Message)
	if r.Level >= slog.LevelError {
		if file, line := callerOf(r.PC); file != "" {
			fmt.Fprintf(&sb, " (%s:%d)", file, line)
		}
	}
	if v, ok := find("error"); ok {
		fmt.Fprintf(&sb, ": %v", v.Any())
	}
	name, hasName := find("name")
	user, hasUser := find("user_name")
	if hasName && hasUser {
		fmt.Fprintf(&sb, " [%s by %s]", name, user)
	}
	if v, ok := find("status"); ok {
		fmt.Fprintf(&sb, " [Status: %s]", v)
	}
	if v, ok := find("took"); ok && v.Kind() == slog.KindDuration {
		fmt.Fprintf(&sb, " (took %dms)", v.Duration().Milliseconds())
	}
	for _, a := range attrs {
		if !hidden[a.Key] {
			fmt.Fprintf(&sb, " %s=%v", a.Key, a.Value)
		}
	}

	color, label := levelStyle(r.Level)
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintf(h.w, "%s[LeviBot] [%s] [%s%s%s] [%s] %s%s\n",
		colorWhite,
		ts.Format("15:04:05"),
		color, label, colorWhite,
		logType,
		sb.String(),
		colorReset,
	)
	return err
}

func levelStyle(level slog.Level) (string, string) {
	switch {
	case level >= slog.LevelError:
		return colorRed, "ERROR"
	case level >= slog.LevelWarn:
		return colorYellow, "WARN"
	case level >= slog.LevelInfo:
		return colorGreen, "INFO"
	default:
		return colorPurple, "DEBUG"
	}
}

func skip(msg string) bool {
	msg = strings.ToLower(msg)
	for _, s := range noisy {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

func callerOf(pc uintptr) (string, int) {
	if pc == 0 {
		return "", 0
	}
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	if frame.File == "" {
		return "", 0
	}
	return filepath.Base(frame.File), frame.Line
}
