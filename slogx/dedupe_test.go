package slogx

import (
	"bytes"
	"context"
	"github.com/stretchr/testify/assert"
	"log/slog"
	"strings"
	"testing"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(NewDedupeHandler(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}

func TestDedupeHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := testLogger(&buf)
	log = log.With("subject", 1)
	log = log.With("subject", 2)
	log = log.With("subject", 3)
	log.Info("Test")
	handler := log.Handler().(*DedupeHandler)
	assert.Equal(t, 1, strings.Count(buf.String(), "subject"))
	assert.Contains(t, buf.String(), "subject=3")
	assert.Len(t, handler.attrs, 1)
}

func TestDedupeHandler_RecordAttrsWin(t *testing.T) {
	var buf bytes.Buffer
	log := testLogger(&buf).With("kind", "from-data", "ticket", "ABC-1")
	log.Debug("failed", "kind", "invalid_argument")
	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "kind="))
	assert.Contains(t, out, "kind=invalid_argument")
	assert.Contains(t, out, "ticket=ABC-1")
}

func TestDedupeHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	log := testLogger(&buf)
	log = log.With("testkey", 1)
	log = log.With("testkey", 2)
	log = log.WithGroup("group")
	log = log.With("groupkey", 1)
	log = log.With("groupkey", 2)
	log.Info("Test")
	handler := log.Handler().(*DedupeHandler)
	assert.Equal(t, 1, strings.Count(buf.String(), "testkey"))
	assert.Equal(t, 1, strings.Count(buf.String(), "group.groupkey"))
	assert.Len(t, handler.attrs, 2)
}

func TestDedupeHandler_NilImpl(t *testing.T) {
	assert.Panics(t, func() {
		NewDedupeHandler(nil)
	})
}

func TestDiscard(t *testing.T) {
	log := slog.New(Discard()).With("a", 1).WithGroup("g")
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
	assert.NotPanics(t, func() {
		log.Error("dropped")
	})
}
