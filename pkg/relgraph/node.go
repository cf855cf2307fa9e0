package relgraph

import (
	"github.com/storygraph/storygraph/pkg/entity"
)

const fragmentTooltip = "see more info"

// NodeFor builds a styled node for an entity. Shape, tooltip, and link
// follow the entity's kind:
//
//   - stories use the engine's default shape
//   - fragments are boxes with a fixed tooltip
//   - characters are hexagons, with the thumbnail as node image when present
//   - locations are houses
//
// Every node links to the entity's detail page and carries its kind tag as
// CSS class so rendered SVGs can be styled per kind.
func NodeFor(ref entity.Ref) *Node {
	n := &Node{
		ID:      ref.ID,
		Label:   ref.DisplayName(),
		Tooltip: ref.Tooltip(),
		URL:     "/" + ref.CategoryTag() + "/" + ref.ID.String(),
		Class:   ref.CategoryTag(),
	}
	switch ref.Kind {
	case entity.KindFragment:
		n.Shape = "box"
		n.Tooltip = fragmentTooltip
	case entity.KindCharacter:
		n.Shape = "hexagon"
		n.Image = ref.ThumbnailURL()
	case entity.KindLocation:
		n.Shape = "house"
	}
	return n
}
