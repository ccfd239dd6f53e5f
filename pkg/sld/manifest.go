package sld

// IconEntry describes the icon of one known node kind.
type IconEntry struct {
	Kind         NodeKind `json:"kind" example:"2"`
	Name         string   `json:"name" example:"breaker"`
	Stateful     bool     `json:"stateful" example:"true"`
	DefaultState State    `json:"default_state,omitempty" example:"closed"`
	Icon         IconPath `json:"icon" example:"qrc:/icons/cbr_closed.svg"`
}

// Manifest lists every known kind with its default icon under theme, in
// code order. The fallback icon is not included; see Theme.Fallback.
func Manifest(theme Theme) []IconEntry {
	entries := make([]IconEntry, 0, len(KnownKinds))
	for _, k := range KnownKinds {
		def, _ := DefaultState(k)
		entries = append(entries, IconEntry{
			Kind:         k,
			Name:         k.String(),
			Stateful:     k.Stateful(),
			DefaultState: def,
			Icon:         theme.Resolve(k, StateNone),
		})
	}
	return entries
}
