package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	q := NoopQueryHooks{}
	q.OnParseStart(ctx, "/var/lib/dpkg/status")
	q.OnParseComplete(ctx, "/var/lib/dpkg/status", 100, time.Second, nil)
	q.OnQuery(ctx, "detail", time.Millisecond, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "records")
	c.OnCacheMiss(ctx, "records")
	c.OnCacheSet(ctx, "records", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "/api/packages", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Query().(NoopQueryHooks); !ok {
		t.Error("Query() should return NoopQueryHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customQuery := &testQueryHooks{}
	SetQueryHooks(customQuery)
	if Query() != customQuery {
		t.Error("SetQueryHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Query().(NoopQueryHooks); !ok {
		t.Error("Reset() should restore NoopQueryHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testQueryHooks{}
	SetQueryHooks(custom)
	SetQueryHooks(nil)

	if Query() != custom {
		t.Error("SetQueryHooks(nil) should be ignored")
	}

	Reset()
}

func TestPrometheusHooks(t *testing.T) {
	ctx := context.Background()
	p := NewPrometheus(prometheus.NewRegistry())

	p.OnParseComplete(ctx, "status", 42, time.Millisecond, nil)
	if got := testutil.ToFloat64(p.Packages); got != 42 {
		t.Errorf("stanzas gauge = %v, want 42", got)
	}

	p.OnParseComplete(ctx, "status", 0, time.Millisecond, errors.New("boom"))
	if got := testutil.ToFloat64(p.Packages); got != 42 {
		t.Errorf("failed parse should not reset gauge, got %v", got)
	}

	p.OnQuery(ctx, "detail", time.Millisecond, nil)
	p.OnQuery(ctx, "detail", time.Millisecond, nil)
	if got := testutil.ToFloat64(p.Queries.WithLabelValues("detail", "ok")); got != 2 {
		t.Errorf("detail queries = %v, want 2", got)
	}

	p.OnCacheHit(ctx, "records")
	p.OnCacheMiss(ctx, "records")
	p.OnCacheSet(ctx, "records", 512)
	if got := testutil.ToFloat64(p.CacheEvents.WithLabelValues("records", "hit")); got != 1 {
		t.Errorf("cache hits = %v, want 1", got)
	}
	if got := testutil.ToFloat64(p.CacheBytes); got != 512 {
		t.Errorf("cache bytes = %v, want 512", got)
	}

	p.OnRequest(ctx, "GET", "/api/packages/{name}", 404, time.Millisecond)
	if got := testutil.ToFloat64(p.Requests.WithLabelValues("GET", "/api/packages/{name}", "404")); got != 1 {
		t.Errorf("requests = %v, want 1", got)
	}
}

type testQueryHooks struct{ NoopQueryHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
