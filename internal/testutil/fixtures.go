package testutil

import (
	"github.com/google/uuid"

	"github.com/HerbHall/stationviz/pkg/sld"
)

// NewNode returns a breaker Node with a unique ID, suitable for test fixtures.
// Override individual fields via options as needed.
func NewNode(opts ...func(*sld.Node)) sld.Node {
	n := sld.Node{
		ID:    "Sub1/VL1/Bay1/" + uuid.NewString(),
		Kind:  sld.NodeKindBreaker,
		Label: "CBR1",
	}
	for _, opt := range opts {
		opt(&n)
	}
	return n
}

// WithKind sets the node kind.
func WithKind(k sld.NodeKind) func(*sld.Node) {
	return func(n *sld.Node) { n.Kind = k }
}

// WithState sets the node state label.
func WithState(s sld.State) func(*sld.Node) {
	return func(n *sld.Node) { n.State = s }
}

// WithID sets the node ID.
func WithID(id string) func(*sld.Node) {
	return func(n *sld.Node) { n.ID = id }
}

// NewNodes returns count breaker nodes with distinct IDs.
func NewNodes(count int, opts ...func(*sld.Node)) []sld.Node {
	nodes := make([]sld.Node, count)
	for i := range nodes {
		nodes[i] = NewNode(opts...)
	}
	return nodes
}
