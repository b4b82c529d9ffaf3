package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without cause",
			err:  ValidationError("ticker is required", nil),
			want: "VALIDATION_ERROR: ticker is required",
		},
		{
			name: "with cause",
			err:  NewsProviderError("fetch failed", errors.New("connection refused"), nil),
			want: "NEWS_PROVIDER_ERROR: fetch failed (caused by: connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("pool closed")
	err := SubscriptionStoreError("add failed", cause, nil)

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should find the cause through Unwrap")
	}
}

func TestAppContextError_HTTPStatusCode(t *testing.T) {
	tests := []struct {
		name string
		code ErrorCode
		want int
	}{
		{name: "auth", code: ErrCodeAuth, want: http.StatusUnauthorized},
		{name: "validation", code: ErrCodeValidation, want: http.StatusBadRequest},
		{name: "rate limit", code: ErrCodeRateLimit, want: http.StatusTooManyRequests},
		{name: "news provider", code: ErrCodeNewsProvider, want: http.StatusBadGateway},
		{name: "timeout", code: ErrCodeTimeout, want: http.StatusGatewayTimeout},
		{name: "catalog", code: ErrCodeCatalog, want: http.StatusServiceUnavailable},
		{name: "subscription store", code: ErrCodeSubscriptionStore, want: http.StatusServiceUnavailable},
		{name: "unknown", code: ErrCodeUnknown, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewAppContextError(string(tt.code), "boom", "rest", "Handler", "op", nil, nil)
			if got := err.HTTPStatusCode(); got != tt.want {
				t.Errorf("HTTPStatusCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAppContextError_IsRetryable(t *testing.T) {
	retryable := NewAppContextError(string(ErrCodeTimeout), "slow provider", "gateway", "NewsGateway", "FetchNews", nil, nil)
	if !retryable.IsRetryable() {
		t.Error("timeout errors should be retryable")
	}

	permanent := NewValidationContextError("bad ticker", "rest", "Handler", "validate", nil)
	if permanent.IsRetryable() {
		t.Error("validation errors should not be retryable")
	}
}

func TestEnrichWithContext(t *testing.T) {
	base := NewAppContextError(string(ErrCodeNewsProvider), "fetch failed", "driver", "RSSProvider", "FetchNews",
		errors.New("status 502"), map[string]interface{}{"ticker": "AAPL"})

	enriched := EnrichWithContext(base, "rest", "NewsHandler", "GetNews", map[string]interface{}{"path": "/v1/news"})

	if enriched.Layer != "rest" || enriched.Component != "NewsHandler" {
		t.Errorf("enrichment should replace layer/component, got %s/%s", enriched.Layer, enriched.Component)
	}
	if enriched.Context["ticker"] != "AAPL" {
		t.Error("enrichment should preserve original context")
	}
	if enriched.Context["path"] != "/v1/news" {
		t.Error("enrichment should merge additional context")
	}
	if !errors.Is(enriched, base.Cause) {
		t.Error("enrichment should preserve the cause chain")
	}
}
