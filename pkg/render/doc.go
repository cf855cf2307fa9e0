// Package render turns DOT graphs into embeddable SVG.
//
// # Overview
//
// [Render] runs a Graphviz layout engine over a DOT document and returns the
// SVG output, post-processed for embedding: the fixed width and height
// attributes Graphviz writes on the root element are stripped so the image
// scales with its container, and HTML hyphen entities are decoded.
//
// Relationship webs use the neato engine for a radial layout around the root
// node; timeline chains use dot for a strictly layered flow.
package render
