// Package entity defines the tagged family of entity kinds that make up a
// storytelling workspace, together with the minimal projection the
// relationship traversal needs.
//
// # Overview
//
// The remote API stores heterogeneous entities: stories, fragments,
// characters, locations, timelines, notes, and images. Each kind carries a
// stable string tag used three ways:
//
//   - as the `category` query parameter on filter requests
//   - as the URL path segment (`/stories/<id>`)
//   - as the CSS class on rendered graph nodes
//
// # Refs
//
// A [Ref] is the minimal projection used during traversal: identity, kind,
// display name, optional description and thumbnail. Richer per-kind metadata
// returned by the API is ignored at traversal time.
package entity

import "github.com/google/uuid"

// Kind discriminates the entity families.
type Kind int

const (
	KindStory Kind = iota
	KindFragment
	KindCharacter
	KindLocation
	KindTimeline
	KindNote
	KindImage
)

// kindTags maps each kind to its stable string tag. The tags double as
// remote category parameters, URL path segments, and node CSS classes.
var kindTags = map[Kind]string{
	KindStory:     "stories",
	KindFragment:  "fragments",
	KindCharacter: "characters",
	KindLocation:  "locations",
	KindTimeline:  "timelines",
	KindNote:      "notes",
	KindImage:     "images",
}

// Tag returns the kind's stable string tag (e.g. "stories").
// Unknown kinds return an empty string.
func (k Kind) Tag() string { return kindTags[k] }

// String returns the tag for logging and debugging.
func (k Kind) String() string { return k.Tag() }

// KindFromTag resolves a category tag back to its Kind.
// Returns false for tags no kind claims.
func KindFromTag(tag string) (Kind, bool) {
	for k, t := range kindTags {
		if t == tag {
			return k, true
		}
	}
	return 0, false
}

// Image is an asset reference attached to characters and locations.
type Image struct {
	ID          uuid.UUID `json:"id"`
	URL         string    `json:"url"`
	Description *string   `json:"description,omitempty"`
}

// Ref is the minimal projection of an entity used during traversal and node
// construction. Values are created by decoding API responses; they are
// immutable once decoded and owned by the traversal.
//
// Kind is not part of the wire format: the fetch site knows which collection
// it asked for and stamps the kind after decoding.
type Ref struct {
	ID          uuid.UUID `json:"id"`
	Kind        Kind      `json:"-"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Thumbnail   *Image    `json:"thumbnail,omitempty"`
}

// DisplayName returns the name shown on graph nodes.
func (r Ref) DisplayName() string { return r.Name }

// CategoryTag returns the kind tag used for routing and styling.
func (r Ref) CategoryTag() string { return r.Kind.Tag() }

// Tooltip returns the node tooltip: the description when present,
// otherwise a fixed prompt.
func (r Ref) Tooltip() string {
	if r.Description != nil && *r.Description != "" {
		return *r.Description
	}
	return "see more info"
}

// ThumbnailURL returns the thumbnail image URL, or "" when absent.
func (r Ref) ThumbnailURL() string {
	if r.Thumbnail == nil {
		return ""
	}
	return r.Thumbnail.URL
}

// StampKind returns a copy of refs with every Kind set to k.
// Fetch sites use it to tag freshly decoded collections.
func StampKind(refs []Ref, k Kind) []Ref {
	for i := range refs {
		refs[i].Kind = k
	}
	return refs
}
