package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1048576, "1.0 MiB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Fatal("missing logger should fall back to default")
	}

	var buf bytes.Buffer
	l := newLogger(&buf, log.DebugLevel)
	ctx := withLogger(context.Background(), l)
	if loggerFromContext(ctx) != l {
		t.Error("attached logger not returned")
	}

	l.Debug("visible")
	if buf.Len() == 0 {
		t.Error("debug message filtered at debug level")
	}
}

func TestSpinnerStopIsIdempotentUnderCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinner(ctx, "working")
	s.Start()
	cancel()
	s.Stop() // must not block or panic after cancellation
	if !s.Cancelled() {
		t.Error("Cancelled() = false after context cancel")
	}
}

func TestReadDOTFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.dot")
	if err := os.WriteFile(path, []byte("digraph {}"), 0o644); err != nil {
		t.Fatal(err)
	}
	data, err := readDOT([]string{path})
	if err != nil {
		t.Fatalf("readDOT: %v", err)
	}
	if string(data) != "digraph {}" {
		t.Errorf("readDOT = %q", data)
	}
	if _, err := readDOT([]string{filepath.Join(t.TempDir(), "missing.dot")}); err == nil {
		t.Error("readDOT(missing) should fail")
	}
}
