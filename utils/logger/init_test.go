package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{name: "json info", level: "info", format: "json"},
		{name: "text debug", level: "debug", format: "text"},
		{name: "unknown level falls back to info", level: "verbose", format: "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := InitLogger(tt.level, tt.format)
			if log == nil {
				t.Fatal("InitLogger returned nil")
			}
			if Logger != log {
				t.Error("global Logger should be set to the returned logger")
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{level: "debug", want: slog.LevelDebug},
		{level: "info", want: slog.LevelInfo},
		{level: "WARN", want: slog.LevelWarn},
		{level: "error", want: slog.LevelError},
		{level: "", want: slog.LevelInfo},
		{level: "nonsense", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.level); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestContextLogger_WithContext(t *testing.T) {
	log := InitLogger("info", "text")
	cl := NewContextLogger(log)

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	ctx = context.WithValue(ctx, UserIDKey, "user-1")

	if cl.WithContext(ctx) == nil {
		t.Fatal("WithContext returned nil logger")
	}

	// Non-string values must not panic.
	ctx = context.WithValue(context.Background(), RequestIDKey, 42)
	if cl.WithContext(ctx) == nil {
		t.Fatal("WithContext with non-string value returned nil logger")
	}
}
