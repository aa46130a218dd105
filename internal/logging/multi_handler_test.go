package logging

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"
)

type recordingHandler struct {
	level slog.Level
	got   int
	err   error
}

func (r *recordingHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= r.level
}

func (r *recordingHandler) Handle(_ context.Context, _ slog.Record) error {
	r.got++
	return r.err
}

func (r *recordingHandler) WithAttrs(_ []slog.Attr) slog.Handler { return r }
func (r *recordingHandler) WithGroup(_ string) slog.Handler      { return r }

func TestMultiHandlerFanOut(t *testing.T) {
	info := &recordingHandler{level: slog.LevelInfo}
	errOnly := &recordingHandler{level: slog.LevelError}
	m := NewMultiHandler(info, errOnly)

	ctx := context.Background()
	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0)

	if !m.Enabled(ctx, slog.LevelInfo) {
		t.Fatal("expected INFO to be enabled while any child accepts it")
	}
	if err := m.Handle(ctx, rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.got != 1 || errOnly.got != 0 {
		t.Fatalf("delivery counts = %d, %d; want 1, 0", info.got, errOnly.got)
	}
}

func TestMultiHandlerKeepsDeliveringAfterChildFailure(t *testing.T) {
	failing := &recordingHandler{level: slog.LevelInfo, err: errors.New("sink down")}
	healthy := &recordingHandler{level: slog.LevelInfo}
	m := NewMultiHandler(failing, healthy)

	rec := slog.NewRecord(time.Now(), slog.LevelError, "boom", 0)
	err := m.Handle(context.Background(), rec)
	if err == nil {
		t.Fatal("expected the child failure to be reported")
	}
	if healthy.got != 1 {
		t.Fatalf("healthy child got %d records, want 1", healthy.got)
	}
}
