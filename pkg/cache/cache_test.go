package cache

import (
	"context"
	"testing"
	"time"
)

func TestKeyDistinctParts(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
	}{
		{"boundary shift", []string{"ab", "c"}, []string{"a", "bc"}},
		{"empty vs missing", []string{"a", ""}, []string{"a"}},
		{"order", []string{"x", "y"}, []string{"y", "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Key(tt.a...) == Key(tt.b...) {
				t.Errorf("Key(%q) == Key(%q), want distinct", tt.a, tt.b)
			}
		})
	}
	if Key("a", "b") != Key("a", "b") {
		t.Error("Key is not deterministic")
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, want miss", ok, err)
	}
	if err := c.Set(ctx, "k", []byte("payload"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, ok, err := c.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get(k) = ok=%v err=%v, want hit", ok, err)
	}
	if string(data) != "payload" {
		t.Errorf("Get(k) = %q, want %q", data, "payload")
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("Get after Delete reported a hit")
	}
}

func TestFileCacheExpiration(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()
	ctx := context.Background()

	if err := c.Set(ctx, "short", []byte("x"), time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, ok, err := c.Get(ctx, "short"); err != nil || ok {
		t.Fatalf("Get(expired) = ok=%v err=%v, want miss", ok, err)
	}
}

func TestFileCacheClearAndStats(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()
	ctx := context.Background()

	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte("1234"), 0); err != nil {
			t.Fatalf("Set(%s): %v", k, err)
		}
	}
	count, bytes, err := c.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if count != 3 || bytes != 12 {
		t.Errorf("Stats = (%d, %d), want (3, 12)", count, bytes)
	}
	removed, err := c.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if removed != 3 {
		t.Errorf("Clear removed %d, want 3", removed)
	}
	if _, ok, _ := c.Get(ctx, "a"); ok {
		t.Error("Get after Clear reported a hit")
	}
}

func TestFileCacheClosed(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	c.Close()
	if _, _, err := c.Get(context.Background(), "k"); err != ErrClosed {
		t.Errorf("Get on closed cache = %v, want ErrClosed", err)
	}
}

func TestNullCache(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()
	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, err := c.Get(ctx, "k"); err != nil || ok {
		t.Errorf("Get = ok=%v err=%v, want permanent miss", ok, err)
	}
}
