package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHandlerFormatsCommandLines(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, slog.LevelInfo))

	log.Info("Command completed",
		slog.String("type", "cmd"),
		slog.String("name", "catch"),
		slog.String("user_name", "Eren"),
		slog.String("status", "success"),
		slog.Duration("took", 1500*time.Millisecond),
		slog.String("room_id", "room"))

	out := buf.String()
	assert.Contains(t, out, "[LeviBot]")
	assert.Contains(t, out, "[CMD]")
	assert.Contains(t, out, "Command completed [catch by Eren] [Status: success] (took 1500ms) room_id=room")
	assert.NotContains(t, out, "user_name=")
}

func TestHandlerErrorsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, slog.LevelInfo)).WithGroup("spawn").With(slog.String("room_id", "r1"))

	log.Error("Sweep failed", slog.Any("error", errors.New("boom")))

	out := buf.String()
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, "logger_test.go:")
	assert.Contains(t, out, ": boom")
	assert.Contains(t, out, "spawn.room_id=r1")
}

func TestHandlerFiltersLevelAndNoise(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, slog.LevelWarn))

	log.Info("ignored")
	log.Warn("Sending heartbeat")
	assert.Empty(t, buf.String())

	log.Warn("Spawn store slow", slog.String("type", "game"))
	assert.Contains(t, buf.String(), "[GAME]")
}
