package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector_FetchCounters(t *testing.T) {
	c := NewCollector()

	c.RecordNewsFetch("success", 120*time.Millisecond)
	c.RecordNewsFetch("success", 80*time.Millisecond)
	c.RecordNewsFetch("failure", 200*time.Millisecond)

	if got := testutil.ToFloat64(c.NewsFetchTotal.WithLabelValues("success")); got != 2 {
		t.Errorf("success count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.NewsFetchTotal.WithLabelValues("failure")); got != 1 {
		t.Errorf("failure count = %v, want 1", got)
	}
}

func TestCollector_CacheCounters(t *testing.T) {
	c := NewCollector()

	c.RecordCacheHit()
	c.RecordCacheMiss()
	c.RecordCacheMiss()

	if got := testutil.ToFloat64(c.NewsCacheEvents.WithLabelValues("hit")); got != 1 {
		t.Errorf("hit count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.NewsCacheEvents.WithLabelValues("miss")); got != 2 {
		t.Errorf("miss count = %v, want 2", got)
	}
}

func TestCollector_RecordMutation(t *testing.T) {
	c := NewCollector()

	c.RecordMutation("subscribe", nil)
	c.RecordMutation("subscribe", errors.New("store down"))
	c.RecordMutation("unsubscribe", nil)

	if got := testutil.ToFloat64(c.SubscriptionMutations.WithLabelValues("subscribe", "success")); got != 1 {
		t.Errorf("subscribe success = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.SubscriptionMutations.WithLabelValues("subscribe", "failure")); got != 1 {
		t.Errorf("subscribe failure = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.SubscriptionMutations.WithLabelValues("unsubscribe", "success")); got != 1 {
		t.Errorf("unsubscribe success = %v, want 1", got)
	}
}
