// Package relgraph builds relationship graphs from storyteller entities.
//
// # Overview
//
// Starting from a root entity, [Builder.Build] expands child collections
// (fragments, characters, locations, sub-stories) breadth by kind and depth
// by recursion, producing a [Graph] of styled nodes and labeled edges. A
// visited set bounds the traversal, so shared children and reference cycles
// are safe: each entity is expanded once and later sightings only add edges.
//
// Timelines are a separate shape. [Builder.BuildTimeline] produces a linear
// chain of the timeline's moments instead of a radial relationship web.
//
// # DOT Output
//
// [Graph.DOT] serializes to Graphviz DOT with node styling per entity kind
// (stories plain, fragments boxed, characters hexagonal, locations as
// houses). Layout and rasterization live in the render package.
//
// # Traversal Order
//
// Expansion is deterministic: for each entity the child collections are
// fetched in a fixed kind order, and children within a collection keep the
// backend's order. The same remote state always yields the same DOT.
package relgraph
