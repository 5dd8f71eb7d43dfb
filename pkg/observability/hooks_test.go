package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	s := NoopSolveHooks{}
	s.OnSolveStart(ctx, "2021/6", 1)
	s.OnSolveComplete(ctx, "2021/6", 1, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "answer:2021:6:1:abc")
	c.OnCacheMiss(ctx, "answer:2021:6:1:abc")
	c.OnCacheSet(ctx, "answer:2021:6:1:abc", 64)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Solve().(NoopSolveHooks); !ok {
		t.Error("Solve() should return NoopSolveHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	h := NewLogHooks(nil)
	SetSolveHooks(h)
	SetCacheHooks(h)
	if Solve() != SolveHooks(h) {
		t.Error("SetSolveHooks should set custom hooks")
	}
	if Cache() != CacheHooks(h) {
		t.Error("SetCacheHooks should set custom hooks")
	}

	SetSolveHooks(nil)
	if Solve() != SolveHooks(h) {
		t.Error("SetSolveHooks(nil) should be ignored")
	}

	Reset()
	if _, ok := Solve().(NoopSolveHooks); !ok {
		t.Error("Reset should restore NoopSolveHooks")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	h := NewLogHooks(logger)
	ctx := context.Background()

	h.OnSolveStart(ctx, "2020/7", 2)
	h.OnSolveComplete(ctx, "2020/7", 2, time.Millisecond, errors.New("boom"))
	h.OnCacheHit(ctx, "answer:2020:7:2:ff")

	out := buf.String()
	for _, want := range []string{"solve start", "solve failed", "boom", "cache hit", "2020/7"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	logger.SetLevel(log.InfoLevel)
	h.OnCacheMiss(ctx, "k")
	if buf.Len() != 0 {
		t.Errorf("debug events logged at info level: %q", buf.String())
	}
}
