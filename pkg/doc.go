// Package pkg provides the core libraries for storygraph relationship
// visualization.
//
// # Overview
//
// Storygraph fetches stories, fragments, characters, locations, and
// timelines from a storyteller backend and renders how they relate to each
// other as an SVG graph. The pkg directory is organized into these areas:
//
//  1. [entity] - The entity model (kinds, references, timelines, tags)
//  2. [api] - HTTP gateway to the storyteller backend
//  3. [relgraph] - Relationship traversal and graph construction
//  4. [render] - Graphviz layout and SVG post-processing
//  5. [pipeline] - Orchestration (fetch, build, layout, cache)
//  6. [cache] - Render artifact caching (file, redis)
//
// # Architecture
//
// The typical data flow through storygraph:
//
//	Storyteller Backend (HTTP + JSON)
//	         ↓
//	    [api] package (gateway, bearer auth, retries)
//	         ↓
//	    [relgraph] package (cycle-safe expansion into a styled graph)
//	         ↓
//	    [render] package (neato/dot layout, embeddable SVG)
//	         ↓
//	    SVG output
//
// # Quick Start
//
// Build and render the relationship graph of a story:
//
//	import (
//	    "context"
//	    "github.com/storygraph/storygraph/pkg/api"
//	    "github.com/storygraph/storygraph/pkg/entity"
//	    "github.com/storygraph/storygraph/pkg/relgraph"
//	    "github.com/storygraph/storygraph/pkg/render"
//	)
//
//	// 1. Connect to the backend
//	gw, _ := api.NewGateway("https://story.example", api.WithToken(token))
//
//	// 2. Expand the story into a graph
//	builder := relgraph.NewBuilder(relgraph.NewFetcher(gw))
//	g, _ := builder.BuildFrom(context.Background(), entity.KindStory, storyID)
//
//	// 3. Lay out and rasterize
//	res, _ := render.Render(context.Background(), g.DOT(), render.EngineNeato)
//
// The [pipeline] package wraps these steps with caching and is what the CLI
// and HTTP server use.
//
// [entity]: github.com/storygraph/storygraph/pkg/entity
// [api]: github.com/storygraph/storygraph/pkg/api
// [relgraph]: github.com/storygraph/storygraph/pkg/relgraph
// [render]: github.com/storygraph/storygraph/pkg/render
// [pipeline]: github.com/storygraph/storygraph/pkg/pipeline
// [cache]: github.com/storygraph/storygraph/pkg/cache
package pkg
