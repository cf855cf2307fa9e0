package relgraph

import (
	"context"

	"github.com/google/uuid"

	"github.com/storygraph/storygraph/pkg/entity"
	"github.com/storygraph/storygraph/pkg/errors"
	"github.com/storygraph/storygraph/pkg/observability"
)

// expansions lists, per entity kind, which child collections to fetch and in
// which order. Kinds missing from the map are leaves.
var expansions = map[entity.Kind][]entity.Kind{
	entity.KindStory:     {entity.KindFragment, entity.KindCharacter, entity.KindLocation, entity.KindStory},
	entity.KindFragment:  {entity.KindFragment, entity.KindCharacter, entity.KindLocation},
	entity.KindCharacter: {entity.KindFragment, entity.KindCharacter, entity.KindLocation},
	entity.KindLocation:  {entity.KindFragment, entity.KindLocation},
}

// Builder expands entities into relationship graphs.
type Builder struct {
	fetcher *Fetcher
}

// NewBuilder creates a Builder using the given fetcher.
func NewBuilder(f *Fetcher) *Builder {
	return &Builder{fetcher: f}
}

// BuildFrom fetches the root entity by kind and ID, then builds its graph.
// Timeline roots produce a linear chain (see [Builder.BuildTimeline]); all
// other kinds produce a relationship web.
func (b *Builder) BuildFrom(ctx context.Context, kind entity.Kind, id uuid.UUID) (*Graph, error) {
	if kind == entity.KindTimeline {
		return b.BuildTimeline(ctx, id)
	}
	root, err := b.fetcher.Entity(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	return b.Build(ctx, root)
}

// Build expands root and its transitive relations into a graph. The
// traversal is depth-first; a visited set guarantees each entity is expanded
// at most once, so cycles and diamonds in the relationship data terminate.
// Any fetch failure aborts the build and is returned unchanged.
func (b *Builder) Build(ctx context.Context, root entity.Ref) (*Graph, error) {
	if root.Kind == entity.KindTimeline {
		return b.BuildTimeline(ctx, root.ID)
	}
	if _, ok := expansions[root.Kind]; !ok {
		return nil, errors.New(errors.CodeUnprocessable, "cannot build a graph rooted at a %s entity", root.Kind)
	}

	g := NewGraph(root.DisplayName())
	g.SetRoot(root.ID)
	visited := make(map[uuid.UUID]bool)
	if err := b.expand(ctx, g, visited, root); err != nil {
		return nil, err
	}
	return g, nil
}

func (b *Builder) expand(ctx context.Context, g *Graph, visited map[uuid.UUID]bool, ref entity.Ref) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if visited[ref.ID] {
		observability.Traversal().OnRevisit(ctx, ref.ID.String())
		return nil
	}
	// Mark before fetching so a child that points back here stops cleanly.
	visited[ref.ID] = true
	observability.Traversal().OnExpand(ctx, ref.CategoryTag(), ref.ID.String())
	g.AddNode(NodeFor(ref))

	for _, childKind := range expansions[ref.Kind] {
		children, err := b.fetcher.Children(ctx, ref.ID, childKind)
		if err != nil {
			return err
		}
		label := childKind.Tag()
		for _, child := range children {
			g.AddEdge(ref.ID, child.ID, label)
			if err := b.expand(ctx, g, visited, child); err != nil {
				return err
			}
		}
	}
	return nil
}
