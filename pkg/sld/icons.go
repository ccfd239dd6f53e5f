package sld

// State is a free-form operational state label such as "opened" or "closed".
// The empty value means no state is known.
type State string

const (
	StateNone         State = ""
	StateOpened       State = "opened"
	StateClosed       State = "closed"
	StateIntermediate State = "intermediate"
)

// IconPath identifies an icon resource, e.g. "qrc:/icons/busbar.svg".
type IconPath string

// Icon file stems. Breaker and disconnector stems are completed with the
// state label.
const (
	iconBusbar       = "busbar"
	iconBay          = "bay"
	iconBreaker      = "cbr_"
	iconDisconnector = "ds_"
	iconTransformer  = "transformer_2w"
	iconLabel        = "label"
	iconUnknown      = "unknown"
)

// Theme locates icon resources. Prefix is prepended to every file stem and
// Extension appended to it.
type Theme struct {
	Prefix    string `json:"prefix" mapstructure:"prefix"`
	Extension string `json:"extension" mapstructure:"extension"`
}

// DefaultTheme points at the Qt resource bundle shipped with the editor.
var DefaultTheme = Theme{Prefix: "qrc:/icons/", Extension: ".svg"}

// DefaultState returns the state assumed for kind when none is given.
// Returns false for kinds whose icon ignores state.
func DefaultState(kind NodeKind) (State, bool) {
	switch kind {
	case NodeKindBreaker:
		return StateClosed, true
	case NodeKindDisconnector:
		return StateOpened, true
	default:
		return StateNone, false
	}
}

// Resolve returns the icon for a node of the given kind in the given state.
// It never fails: unmapped kinds get the "unknown" icon and an empty state
// falls back to DefaultState. Non-empty states are used verbatim.
func (t Theme) Resolve(kind NodeKind, state State) IconPath {
	switch kind {
	case NodeKindBusbar:
		return t.path(iconBusbar)
	case NodeKindBay:
		return t.path(iconBay)
	case NodeKindBreaker, NodeKindDisconnector:
		if state == StateNone {
			state, _ = DefaultState(kind)
		}
		stem := iconBreaker
		if kind == NodeKindDisconnector {
			stem = iconDisconnector
		}
		return t.path(stem + string(state))
	case NodeKindTransformer:
		return t.path(iconTransformer)
	case NodeKindVoltageLevelLabel:
		return t.path(iconLabel)
	default:
		return t.path(iconUnknown)
	}
}

// Fallback returns the icon used for unmapped kinds.
func (t Theme) Fallback() IconPath {
	return t.path(iconUnknown)
}

func (t Theme) path(stem string) IconPath {
	return IconPath(t.Prefix + stem + t.Extension)
}

// ResolveIcon resolves against DefaultTheme.
func ResolveIcon(kind NodeKind, state State) IconPath {
	return DefaultTheme.Resolve(kind, state)
}
