package logging_test

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"honnef.co/go/pathgeom/internal/logging"
)

func TestSetLogger(t *testing.T) {
	old := logging.Logger()
	defer logging.SetLogger(old)

	var buf bytes.Buffer
	logging.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	logging.Logger().Debug("recursion ceiling reached", slog.Int("depth", 32))

	if !strings.Contains(buf.String(), "recursion ceiling reached") {
		t.Errorf("expected SetLogger to configure the package logger, got %q", buf.String())
	}
}

func TestSetLoggerNil(t *testing.T) {
	old := logging.Logger()
	defer logging.SetLogger(old)

	logging.SetLogger(nil)
	l := logging.Logger()
	if l == nil {
		t.Fatal("expected non-nil logger after SetLogger(nil)")
	}
	if l.Handler() != slog.DiscardHandler {
		t.Error("expected SetLogger(nil) to select slog.DiscardHandler")
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	old := logging.Logger()
	defer logging.SetLogger(old)

	var wg sync.WaitGroup
	for i := range 64 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if n%2 == 0 {
				logging.SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
			} else if logging.Logger() == nil {
				t.Error("Logger() returned nil during concurrent access")
			}
		}(i)
	}
	wg.Wait()
}
