package relgraph

import (
	"context"

	"github.com/google/uuid"

	"github.com/storygraph/storygraph/pkg/entity"
	"github.com/storygraph/storygraph/pkg/errors"
)

// timelineEdgeLabel is the label on every link of a moment chain.
const timelineEdgeLabel = "weight"

// BuildTimeline fetches a timeline and renders its moments as a linear
// chain in moment order. A fragment appearing in several moments keeps its
// first node; later moments link back to it. Timelines without moments
// produce a graph with only the attributes set.
func (b *Builder) BuildTimeline(ctx context.Context, id uuid.UUID) (*Graph, error) {
	tl, err := b.fetcher.Timeline(ctx, id)
	if err != nil {
		return nil, err
	}
	return TimelineGraph(tl)
}

// TimelineGraph builds the linear chain graph for an already fetched
// timeline.
func TimelineGraph(tl entity.Timeline) (*Graph, error) {
	g := NewGraph(tl.Name)

	var prev uuid.UUID
	for i, m := range tl.Moments {
		frag := m.Fragment
		if frag.ID == uuid.Nil {
			return nil, errors.New(errors.CodeUnprocessable, "timeline %s: moment %d has no fragment", tl.ID, i)
		}
		frag.Kind = entity.KindFragment
		g.AddNode(NodeFor(frag))
		if i == 0 {
			g.SetRoot(frag.ID)
		} else {
			g.AddEdge(prev, frag.ID, timelineEdgeLabel)
		}
		prev = frag.ID
	}
	return g, nil
}
