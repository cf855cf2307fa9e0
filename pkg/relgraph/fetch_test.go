package relgraph

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/storygraph/storygraph/pkg/api"
	"github.com/storygraph/storygraph/pkg/entity"
	"github.com/storygraph/storygraph/pkg/errors"
)

func newTestFetcher(t *testing.T, h http.HandlerFunc) *Fetcher {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	gw, err := api.NewGateway(srv.URL, api.WithRetry(1, 0))
	if err != nil {
		t.Fatalf("NewGateway: %v", err)
	}
	return NewFetcher(gw)
}

func TestChildrenRequestShape(t *testing.T) {
	parent := uuid.New()
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/characters/filter" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("parent") != parent.String() || q.Get("category") != "characters" {
			t.Errorf("query = %q", r.URL.RawQuery)
		}
		w.Write([]byte(`[{"id":"` + uuid.New().String() + `","name":"Ada"}]`))
	})

	refs, err := f.Characters(context.Background(), parent)
	if err != nil {
		t.Fatalf("Characters: %v", err)
	}
	if len(refs) != 1 || refs[0].Kind != entity.KindCharacter {
		t.Errorf("refs = %+v, want one ref stamped as character", refs)
	}
}

func TestChildrenNullBody(t *testing.T) {
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("null"))
	})
	refs, err := f.Fragments(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Fragments: %v", err)
	}
	if refs == nil || len(refs) != 0 {
		t.Errorf("refs = %#v, want empty non-nil slice", refs)
	}
}

func TestEntityStampsKind(t *testing.T) {
	id := uuid.New()
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/locations/"+id.String() {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(entity.Ref{ID: id, Name: "Harbor"})
	})

	ref, err := f.Entity(context.Background(), entity.KindLocation, id)
	if err != nil {
		t.Fatalf("Entity: %v", err)
	}
	if ref.Kind != entity.KindLocation || ref.Name != "Harbor" {
		t.Errorf("ref = %+v", ref)
	}
}

func TestNotesAndTags(t *testing.T) {
	parent := uuid.New()
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/notes":
			q := r.URL.Query()
			if q.Get("parent") != parent.String() || q.Get("category") != "notes" {
				t.Errorf("query = %q", r.URL.RawQuery)
			}
			w.Write([]byte(`[{"id":"` + uuid.New().String() + `","name":"todo"}]`))
		case "/tags/" + parent.String():
			w.Write([]byte(`[{"id":"` + uuid.New().String() + `","entity":"` + parent.String() + `","value":"mystery"}]`))
		default:
			http.NotFound(w, r)
		}
	})

	notes, err := f.Notes(context.Background(), parent)
	if err != nil || len(notes) != 1 || notes[0].Name != "todo" {
		t.Errorf("Notes = %+v, %v", notes, err)
	}
	tags, err := f.Tags(context.Background(), parent)
	if err != nil || len(tags) != 1 || tags[0].Value != "mystery" {
		t.Errorf("Tags = %+v, %v", tags, err)
	}
}

func TestChildrenUnknownKind(t *testing.T) {
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {})
	if _, err := f.Children(context.Background(), uuid.New(), entity.Kind(99)); !errors.Is(err, errors.CodeBadRequest) {
		t.Errorf("Children(unknown kind) = %v, want BAD_REQUEST", err)
	}
}
