package observability

import (
	"context"
	"testing"
	"time"
)

type countingHTTP struct {
	NoopHTTPHooks
	requests int
}

func (c *countingHTTP) OnRequest(context.Context, string, string, string) { c.requests++ }

type countingTraversal struct {
	NoopTraversalHooks
	expands int
}

func (c *countingTraversal) OnExpand(context.Context, string, string) { c.expands++ }

func TestDefaultsAreNoop(t *testing.T) {
	Reset()

	// No panics, no effects.
	ctx := context.Background()
	HTTP().OnRequest(ctx, "GET", "api.example", "/stories/1")
	HTTP().OnResponse(ctx, "GET", "api.example", "/stories/1", 200, time.Millisecond)
	Traversal().OnExpand(ctx, "stories", "1")
	Traversal().OnRevisit(ctx, "1")
	Render().OnLayoutStart(ctx, "neato", 3)
	Render().OnLayoutComplete(ctx, "neato", time.Millisecond, nil)
	Cache().OnCacheHit(ctx, "render")
}

func TestSetAndReset(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	h := &countingHTTP{}
	tr := &countingTraversal{}
	SetHTTPHooks(h)
	SetTraversalHooks(tr)

	HTTP().OnRequest(context.Background(), "GET", "api.example", "/")
	Traversal().OnExpand(context.Background(), "stories", "1")

	if h.requests != 1 {
		t.Errorf("requests = %d, want 1", h.requests)
	}
	if tr.expands != 1 {
		t.Errorf("expands = %d, want 1", tr.expands)
	}

	Reset()
	HTTP().OnRequest(context.Background(), "GET", "api.example", "/")
	if h.requests != 1 {
		t.Error("hooks still registered after Reset")
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	SetRenderHooks(nil)
	if Render() == nil {
		t.Fatal("Render() = nil after SetRenderHooks(nil)")
	}
}
