package ws

import (
	"time"

	"github.com/HerbHall/stationviz/pkg/sld"
)

// MessageType discriminates WebSocket messages.
//
// Clients send one sld.Node per text frame whenever a node changes; the
// server answers each with an icon.resolved or icon.error Message.
type MessageType string

const (
	MessageIconResolved MessageType = "icon.resolved"
	MessageIconError    MessageType = "icon.error"
)

// Message is the envelope for all server-to-client messages.
type Message struct {
	Type      MessageType   `json:"type"`
	ID        string        `json:"id,omitempty"`
	Kind      *sld.NodeKind `json:"kind,omitempty"`
	State     sld.State     `json:"state,omitempty"`
	Icon      sld.IconPath  `json:"icon,omitempty"`
	Error     string        `json:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}
