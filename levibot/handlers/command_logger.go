package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/disgoorg/disgo/handler"

	"github.com/ellavondegurechaff/levibot/levibot/config"
	"github.com/ellavondegurechaff/levibot/levibot/messenger"
	"github.com/ellavondegurechaff/levibot/levibot/metrics"
)

// PrefixEvent is one chat command parsed from a message.
type PrefixEvent struct {
	Message messenger.IncomingMessage
	Name    string
	Args    []string
}

type PrefixHandler func(ctx context.Context, e *PrefixEvent) error

var recorder atomic.Pointer[metrics.Metrics]

// SetMetrics makes every wrapped command report to m.
func SetMetrics(m *metrics.Metrics) {
	recorder.Store(m)
}

// WrapWithLogging wraps a slash command handler with logging functionality
func WrapWithLogging(name string, h handler.CommandHandler) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		attrs := []any{
			slog.String("type", "cmd"),
			slog.String("name", name),
			slog.String("user_id", e.User().ID.String()),
			slog.String("user_name", e.User().Username),
		}
		return observe(name, attrs, config.CommandExecutionTimeout, func() error {
			return h(e)
		})
	}
}

// WrapPrefixWithLogging wraps a chat command. The handler's context is
// cancelled when the command times out.
func WrapPrefixWithLogging(name string, h PrefixHandler) PrefixHandler {
	return func(ctx context.Context, e *PrefixEvent) error {
		ctx, cancel := context.WithTimeout(ctx, config.CommandExecutionTimeout)
		defer cancel()

		attrs := []any{
			slog.String("type", "cmd"),
			slog.String("name", name),
			slog.String("user_id", e.Message.SenderID),
			slog.String("user_name", e.Message.SenderName),
			slog.String("room_id", e.Message.RoomID),
		}
		return observe(name, attrs, config.CommandExecutionTimeout, func() error {
			return h(ctx, e)
		})
	}
}

func observe(name string, attrs []any, timeout time.Duration, run func() error) error {
	start := time.Now()
	slog.Info("Command started", attrs...)

	done := make(chan error, 1)
	go func() {
		done <- run()
	}()

	select {
	case err := <-done:
		took := time.Since(start)
		attrs = append(attrs, slog.Duration("took", took))

		status := "success"
		switch {
		case err != nil:
			status = "failed"
			slog.Error("Command failed", append(attrs,
				slog.Any("error", err),
				slog.String("status", status),
			)...)
		case took > config.SlowCommandThreshold:
			status = "slow"
			slog.Warn("Command executed slowly", append(attrs,
				slog.String("status", status),
			)...)
		default:
			slog.Info("Command completed", append(attrs,
				slog.String("status", status),
			)...)
		}
		recorder.Load().ObserveCommand(name, status, took)
		return err

	case <-time.After(timeout):
		slog.Error("Command timed out", append(attrs,
			slog.String("status", "timeout"),
			slog.Duration("timeout", timeout),
		)...)
		recorder.Load().ObserveCommand(name, "timeout", timeout)
		return fmt.Errorf("command timed out after %s", timeout)
	}
}
