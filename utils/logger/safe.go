package logger

import "context"

// Safe logging helpers tolerate an uninitialized global logger, which
// happens in unit tests that exercise drivers directly.

func SafeInfoContext(ctx context.Context, msg string, args ...any) {
	if Logger == nil {
		return
	}
	Logger.InfoContext(ctx, msg, args...)
}

func SafeWarnContext(ctx context.Context, msg string, args ...any) {
	if Logger == nil {
		return
	}
	Logger.WarnContext(ctx, msg, args...)
}

func SafeErrorContext(ctx context.Context, msg string, args ...any) {
	if Logger == nil {
		return
	}
	Logger.ErrorContext(ctx, msg, args...)
}
