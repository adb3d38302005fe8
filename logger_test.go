package canvas

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"strings"
	"sync"
	"testing"
)

func TestNopHandler_Enabled(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
}

func TestNopHandler_Handle(t *testing.T) {
	h := nopHandler{}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
}

func TestNopHandler_WithAttrsAndGroup(t *testing.T) {
	h := nopHandler{}
	if got := h.WithAttrs([]slog.Attr{slog.String("key", "val")}); got != (nopHandler{}) {
		t.Errorf("nopHandler.WithAttrs() returned %T, want nopHandler", got)
	}
	if got := h.WithGroup("group"); got != (nopHandler{}) {
		t.Errorf("nopHandler.WithGroup() returned %T, want nopHandler", got)
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := debugLogger(&buf)
	SetLogger(custom)

	if Logger() != custom {
		t.Error("Logger() did not return the custom logger set via SetLogger")
	}

	// Contexts without their own logger pick up the package logger.
	ctx := NewContext()
	ctx.SetGlobalAlpha(2)
	if out := buf.String(); !strings.Contains(out, "op=globalAlpha") {
		t.Errorf("package logger did not see the rejected call: %q", out)
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) should set nop logger, not nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should produce a disabled logger")
	}
}

func TestContextLoggerRejections(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContext(WithLogger(debugLogger(&buf)))

	ctx.Scale(math.NaN(), 1)
	ctx.SetLineWidth(-1)
	ctx.Scale(2, 2)

	out := buf.String()
	for _, want := range []string{"op=scale", "op=lineWidth", "level=DEBUG"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "ignoring invalid argument"); n != 2 {
		t.Errorf("logged %d rejections, want 2:\n%s", n, out)
	}
}

func TestContextLoggerLifecycle(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContext(WithLogger(debugLogger(&buf)))
	ctx.Save()
	_ = ctx.Close()
	_ = ctx.Close()
	ctx.Translate(1, 1)

	out := buf.String()
	if n := strings.Count(out, "context closed"); n != 1 {
		t.Errorf("logged close %d times, want 1:\n%s", n, out)
	}
	if !strings.Contains(out, "saved=1") {
		t.Errorf("close record missing saved count:\n%s", out)
	}
	if !strings.Contains(out, "call on closed context") || !strings.Contains(out, "op=translate") {
		t.Errorf("closed-context call not logged:\n%s", out)
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	const goroutines = 100

	// Concurrent readers, each with its own context.
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l := Logger()
			if l == nil {
				t.Error("Logger() returned nil during concurrent access")
			}
			l.Debug("concurrent read")
			NewContext().SetGlobalAlpha(math.Inf(1))
		}()
	}

	// Concurrent writers.
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
			SetLogger(nil)
		}()
	}

	wg.Wait()
}

func BenchmarkLoggerLoad(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		l := Logger()
		_ = l
	}
}

func BenchmarkRejectedSetter(b *testing.B) {
	// Hot path: a rejected call against the silent default logger.
	ctx := NewContext()
	b.ReportAllocs()
	for b.Loop() {
		ctx.SetGlobalAlpha(2)
	}
}
