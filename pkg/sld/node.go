package sld

import (
	"encoding/json"
	"errors"
)

// ErrMissingKind is returned when a decoded node carries no kind.
var ErrMissingKind = errors.New("node kind is required")

// Node is one element of a single-line diagram as seen by icon consumers.
type Node struct {
	ID    string   `json:"id" validate:"max=256" example:"Sub1/VL1/Bay1/CBR1"`
	Kind  NodeKind `json:"kind" example:"2"`
	Label string   `json:"label,omitempty" validate:"max=256" example:"CBR1"`
	State State    `json:"state,omitempty" example:"closed"`
}

// Icon resolves the node's icon under theme.
func (n Node) Icon(theme Theme) IconPath {
	return theme.Resolve(n.Kind, n.State)
}

// UnmarshalJSON decodes a node and rejects one without a kind, which would
// otherwise read as a busbar.
func (n *Node) UnmarshalJSON(data []byte) error {
	type plain Node
	var raw struct {
		plain
		Kind *NodeKind `json:"kind"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Kind == nil {
		return ErrMissingKind
	}
	*n = Node(raw.plain)
	n.Kind = *raw.Kind
	return nil
}
