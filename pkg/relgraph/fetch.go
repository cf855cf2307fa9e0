package relgraph

import (
	"context"

	"github.com/google/uuid"

	"github.com/storygraph/storygraph/pkg/api"
	"github.com/storygraph/storygraph/pkg/entity"
	"github.com/storygraph/storygraph/pkg/errors"
	"github.com/storygraph/storygraph/pkg/observability"
)

// Fetcher retrieves entities and their child collections from the backend.
// Child collections are served by the per-kind filter endpoints, e.g.
// GET /fragments/filter?parent=<id>&category=fragments.
type Fetcher struct {
	gw *api.Gateway
}

// NewFetcher creates a Fetcher on top of a gateway.
func NewFetcher(gw *api.Gateway) *Fetcher {
	return &Fetcher{gw: gw}
}

// Children fetches the parent's children of the given kind. A backend that
// reports no children (null or empty body) yields an empty slice. The
// returned refs are stamped with the requested kind.
func (f *Fetcher) Children(ctx context.Context, parent uuid.UUID, kind entity.Kind) ([]entity.Ref, error) {
	tag := kind.Tag()
	if tag == "" {
		return nil, errors.New(errors.CodeBadRequest, "unknown entity kind %d", kind)
	}
	req := api.NewRequest().
		Route(tag, "filter").
		SetParam("parent", parent.String()).
		SetParam("category", tag)
	refs, err := api.SendList[entity.Ref](ctx, f.gw, req)
	if err != nil {
		return nil, err
	}
	observability.Traversal().OnChildren(ctx, parent.String(), tag, len(refs))
	return entity.StampKind(refs, kind), nil
}

// Fragments fetches the parent's fragments.
func (f *Fetcher) Fragments(ctx context.Context, parent uuid.UUID) ([]entity.Ref, error) {
	return f.Children(ctx, parent, entity.KindFragment)
}

// Characters fetches the parent's characters.
func (f *Fetcher) Characters(ctx context.Context, parent uuid.UUID) ([]entity.Ref, error) {
	return f.Children(ctx, parent, entity.KindCharacter)
}

// Locations fetches the parent's locations.
func (f *Fetcher) Locations(ctx context.Context, parent uuid.UUID) ([]entity.Ref, error) {
	return f.Children(ctx, parent, entity.KindLocation)
}

// Stories fetches the parent's sub-stories.
func (f *Fetcher) Stories(ctx context.Context, parent uuid.UUID) ([]entity.Ref, error) {
	return f.Children(ctx, parent, entity.KindStory)
}

// Entity fetches a single entity by kind and ID.
func (f *Fetcher) Entity(ctx context.Context, kind entity.Kind, id uuid.UUID) (entity.Ref, error) {
	tag := kind.Tag()
	if tag == "" {
		return entity.Ref{}, errors.New(errors.CodeBadRequest, "unknown entity kind %d", kind)
	}
	ref, err := api.Send[entity.Ref](ctx, f.gw, api.NewRequest().Route(tag, id.String()))
	if err != nil {
		return entity.Ref{}, err
	}
	ref.Kind = kind
	return ref, nil
}

// Notes fetches the notes attached to an entity.
func (f *Fetcher) Notes(ctx context.Context, parent uuid.UUID) ([]entity.Note, error) {
	req := api.NewRequest().
		Route("notes").
		SetParam("parent", parent.String()).
		SetParam("category", "notes")
	return api.SendList[entity.Note](ctx, f.gw, req)
}

// Tags fetches the tags attached to an entity.
func (f *Fetcher) Tags(ctx context.Context, entityID uuid.UUID) ([]entity.Tag, error) {
	req := api.NewRequest().Route("tags", entityID.String())
	return api.SendList[entity.Tag](ctx, f.gw, req)
}

// Timeline fetches a timeline with its ordered moments.
func (f *Fetcher) Timeline(ctx context.Context, id uuid.UUID) (entity.Timeline, error) {
	return api.Send[entity.Timeline](ctx, f.gw, api.NewRequest().Route("timelines", id.String()))
}
