package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Trace hooks
	tr := NoopTraceHooks{}
	tr.OnRootStart(ctx, "os")
	tr.OnRootComplete(ctx, "os", time.Second, nil)
	tr.OnEdge(ctx, "os", "sys")

	// Loader hooks
	l := NoopLoaderHooks{}
	l.OnLoadStart(ctx, "os")
	l.OnLoadComplete(ctx, "os", 3, time.Second, nil)
	l.OnCacheHit(ctx, "os")

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "artifact")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Trace().(NoopTraceHooks); !ok {
		t.Error("Trace() should return NoopTraceHooks by default")
	}
	if _, ok := Loader().(NoopLoaderHooks); !ok {
		t.Error("Loader() should return NoopLoaderHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	// Set custom hooks
	customTrace := &testTraceHooks{}
	SetTraceHooks(customTrace)
	if Trace() != customTrace {
		t.Error("SetTraceHooks should set custom hooks")
	}

	customLoader := &testLoaderHooks{}
	SetLoaderHooks(customLoader)
	if Loader() != customLoader {
		t.Error("SetLoaderHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Trace().(NoopTraceHooks); !ok {
		t.Error("Reset() should restore NoopTraceHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testTraceHooks{}
	SetTraceHooks(custom)

	// Setting nil should be ignored
	SetTraceHooks(nil)

	if Trace() != custom {
		t.Error("SetTraceHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testTraceHooks struct{ NoopTraceHooks }
type testLoaderHooks struct{ NoopLoaderHooks }
type testCacheHooks struct{ NoopCacheHooks }
