// Package pipeline wires fetching, graph building, layout, and caching into
// one entry point shared by the CLI and the HTTP server.
package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/storygraph/storygraph/pkg/api"
	"github.com/storygraph/storygraph/pkg/cache"
	"github.com/storygraph/storygraph/pkg/entity"
	"github.com/storygraph/storygraph/pkg/errors"
	"github.com/storygraph/storygraph/pkg/relgraph"
	"github.com/storygraph/storygraph/pkg/render"
)

// DefaultTTL is how long finished renders stay cached when the runner is not
// configured otherwise.
const DefaultTTL = 15 * time.Minute

// Runner executes the full graph pipeline. It is safe for concurrent use.
type Runner struct {
	gw    *api.Gateway
	cache cache.Cache
	ttl   time.Duration
}

// NewRunner creates a Runner. Pass a [cache.NullCache] to disable caching.
func NewRunner(gw *api.Gateway, c cache.Cache, ttl time.Duration) *Runner {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Runner{gw: gw, cache: c, ttl: ttl}
}

// Params describes one graph generation request.
type Params struct {
	Kind entity.Kind
	ID   uuid.UUID

	// Token overrides the gateway's default bearer token for this request.
	Token string

	// Engine forces a layout engine. Empty selects by kind: dot for
	// timelines, neato for everything else.
	Engine render.Engine

	// NoCache bypasses the render cache for this request.
	NoCache bool
}

func (p Params) engine() render.Engine {
	if p.Engine != "" {
		return p.Engine
	}
	if p.Kind == entity.KindTimeline {
		return render.EngineDot
	}
	return render.EngineNeato
}

// Generate builds the relationship graph for an entity and renders it.
// Finished renders are cached keyed by the DOT text and engine, so an
// unchanged remote graph is laid out once.
func (r *Runner) Generate(ctx context.Context, p Params) (*render.Result, error) {
	g, err := r.buildGraph(ctx, p)
	if err != nil {
		return nil, err
	}
	dot := g.DOT()
	engine := p.engine()
	key := cache.Key(dot, string(engine))

	if !p.NoCache {
		if res, ok := r.lookup(ctx, key); ok {
			return res, nil
		}
	}

	res, err := render.Render(ctx, dot, engine)
	if err != nil {
		return nil, err
	}
	if !p.NoCache {
		r.store(ctx, key, res)
	}
	return res, nil
}

// GraphDOT builds the relationship graph and returns its DOT without running
// a layout. Used by the dot output format.
func (r *Runner) GraphDOT(ctx context.Context, p Params) (string, error) {
	g, err := r.buildGraph(ctx, p)
	if err != nil {
		return "", err
	}
	return g.DOT(), nil
}

// Preview renders caller-supplied DOT with the given engine, bypassing both
// entity fetching and the cache.
func (r *Runner) Preview(ctx context.Context, dot string, engine render.Engine) (*render.Result, error) {
	if dot == "" {
		return nil, errors.New(errors.CodeBadRequest, "empty DOT document")
	}
	if engine == "" {
		engine = render.EngineNeato
	}
	return render.Render(ctx, dot, engine)
}

func (r *Runner) buildGraph(ctx context.Context, p Params) (*relgraph.Graph, error) {
	if p.ID == uuid.Nil {
		return nil, errors.New(errors.CodeBadRequest, "missing entity ID")
	}
	gw := r.gw
	if p.Token != "" {
		gw = gw.WithDefaultToken(p.Token)
	}
	builder := relgraph.NewBuilder(relgraph.NewFetcher(gw))
	return builder.BuildFrom(ctx, p.Kind, p.ID)
}

// lookup returns a cached result. Cache errors count as misses; a broken
// cache must not fail a render that can still happen.
func (r *Runner) lookup(ctx context.Context, key string) (*render.Result, bool) {
	data, ok, err := r.cache.Get(ctx, key)
	if err != nil || !ok {
		return nil, false
	}
	var res render.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, false
	}
	return &res, true
}

func (r *Runner) store(ctx context.Context, key string, res *render.Result) {
	data, err := json.Marshal(res)
	if err != nil {
		return
	}
	_ = r.cache.Set(ctx, key, data, r.ttl)
}
