// Package sld holds the single-line diagram node vocabulary shared by the
// StationViz server, CLI and WebSocket stream.
package sld

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// NodeKind categorizes a node of the single-line diagram.
//
// The set is open: any integer is a valid NodeKind, and codes without a
// mapping render with the fallback icon.
type NodeKind int

const (
	NodeKindBusbar            NodeKind = 0
	NodeKindBay               NodeKind = 1
	NodeKindBreaker           NodeKind = 2
	NodeKindDisconnector      NodeKind = 3
	NodeKindTransformer       NodeKind = 4
	NodeKindVoltageLevelLabel NodeKind = 5
	NodeKindUnknown           NodeKind = 6
)

// ErrUnknownKind is returned by ParseNodeKind for names it does not know.
var ErrUnknownKind = errors.New("unknown node kind")

// KnownKinds lists the kinds that have a dedicated icon, in code order.
var KnownKinds = []NodeKind{
	NodeKindBusbar,
	NodeKindBay,
	NodeKindBreaker,
	NodeKindDisconnector,
	NodeKindTransformer,
	NodeKindVoltageLevelLabel,
}

var kindNames = map[NodeKind]string{
	NodeKindBusbar:            "busbar",
	NodeKindBay:               "bay",
	NodeKindBreaker:           "breaker",
	NodeKindDisconnector:      "disconnector",
	NodeKindTransformer:       "transformer",
	NodeKindVoltageLevelLabel: "label",
}

// kindAliases are extra spellings accepted by ParseNodeKind. Besides
// editor shorthands they cover the SCL conducting equipment types and
// IEC 61850 logical node classes that substation configuration files use
// for the kinds with an icon.
var kindAliases = map[string]NodeKind{
	"bbs":                 NodeKindBusbar,
	"busbarsection":       NodeKindBusbar,
	"busbar_section":      NodeKindBusbar,
	"cb":                  NodeKindBreaker,
	"cbr":                 NodeKindBreaker,
	"xcbr":                NodeKindBreaker,
	"circuit_breaker":     NodeKindBreaker,
	"ds":                  NodeKindDisconnector,
	"dis":                 NodeKindDisconnector,
	"xswi":                NodeKindDisconnector,
	"switch":              NodeKindDisconnector,
	"ptr":                 NodeKindTransformer,
	"trf":                 NodeKindTransformer,
	"powertransformer":    NodeKindTransformer,
	"power_transformer":   NodeKindTransformer,
	"transformer_2w":      NodeKindTransformer,
	"voltage_level_label": NodeKindVoltageLevelLabel,

	// Equipment without a dedicated icon.
	"es":                 NodeKindUnknown,
	"earthswitch":        NodeKindUnknown,
	"egnd":               NodeKindUnknown,
	"ctr":                NodeKindUnknown,
	"ct":                 NodeKindUnknown,
	"tctr":               NodeKindUnknown,
	"currenttransformer": NodeKindUnknown,
	"vtr":                NodeKindUnknown,
	"vt":                 NodeKindUnknown,
	"pt":                 NodeKindUnknown,
	"tvtr":               NodeKindUnknown,
	"voltagetransformer": NodeKindUnknown,
	"line":               NodeKindUnknown,
	"feeder":             NodeKindUnknown,
	"cable":              NodeKindUnknown,
}

// String returns the lower-case name of the kind, or "unknown(<code>)".
func (k NodeKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	if k == NodeKindUnknown {
		return "unknown"
	}
	return "unknown(" + strconv.Itoa(int(k)) + ")"
}

// Known reports whether the kind has a dedicated icon.
func (k NodeKind) Known() bool {
	_, ok := kindNames[k]
	return ok
}

// Stateful reports whether the kind's icon depends on its state label.
func (k NodeKind) Stateful() bool {
	return k == NodeKindBreaker || k == NodeKindDisconnector
}

// ParseNodeKind converts a name, alias or decimal code into a NodeKind.
// Decimal codes are accepted as-is, including ones without a mapping.
func ParseNodeKind(s string) (NodeKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("parse node kind: %w: empty value", ErrUnknownKind)
	}
	if n, err := strconv.Atoi(s); err == nil {
		return NodeKind(n), nil
	}
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	if k, ok := kindAliases[s]; ok {
		return k, nil
	}
	if s == "unknown" {
		return NodeKindUnknown, nil
	}
	return 0, fmt.Errorf("parse node kind %q: %w", s, ErrUnknownKind)
}

// UnmarshalJSON accepts either a numeric code or a name understood by
// ParseNodeKind.
func (k *NodeKind) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseNodeKind(s)
		if err != nil {
			return err
		}
		*k = parsed
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("node kind must be an integer or a name: %w", err)
	}
	*k = NodeKind(n)
	return nil
}
