package entity

import "github.com/google/uuid"

// Note is a leaf annotation attached to an entity. Notes never recurse
// during traversal.
type Note struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Created     int64     `json:"created"`
	Completed   int64     `json:"completed"`
}

// Tag is a leaf label attached to an entity. Tags never recurse during
// traversal.
type Tag struct {
	ID     uuid.UUID `json:"id"`
	Entity uuid.UUID `json:"entity"`
	Value  string    `json:"value"`
}

// TagCount is a popularity aggregate returned by the analytics endpoint.
type TagCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Moment is an ordered position of a fragment within a timeline.
type Moment struct {
	ID       uuid.UUID `json:"id"`
	Timeline uuid.UUID `json:"timeline"`
	Fragment Ref       `json:"fragment"`
}

// Timeline is an ordered sequence of moments, each wrapping one fragment.
// Timelines render as linear chains rather than through the generic
// expansion.
type Timeline struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Moments []Moment  `json:"moments"`
}
