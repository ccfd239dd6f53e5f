package sld

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestResolveIconProperties checks the resolver invariants over generated
// kinds and state labels.
func TestResolveIconProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("resolution is deterministic", prop.ForAll(
		func(kind int, state string) bool {
			return ResolveIcon(NodeKind(kind), State(state)) == ResolveIcon(NodeKind(kind), State(state))
		},
		gen.Int(),
		gen.AnyString(),
	))

	properties.Property("unmapped kinds always resolve to the fallback", prop.ForAll(
		func(kind int, state string) bool {
			k := NodeKind(kind)
			if k.Known() {
				return true
			}
			return ResolveIcon(k, State(state)) == DefaultTheme.Fallback()
		},
		gen.Int(),
		gen.AnyString(),
	))

	properties.Property("stateless kinds ignore state", prop.ForAll(
		func(idx int, state string) bool {
			k := []NodeKind{NodeKindBusbar, NodeKindBay, NodeKindTransformer, NodeKindVoltageLevelLabel}[idx]
			return ResolveIcon(k, State(state)) == ResolveIcon(k, StateNone)
		},
		gen.IntRange(0, 3),
		gen.AnyString(),
	))

	properties.Property("non-empty states are embedded verbatim", prop.ForAll(
		func(disconnector bool, state string) bool {
			k, stem := NodeKindBreaker, "qrc:/icons/cbr_"
			if disconnector {
				k, stem = NodeKindDisconnector, "qrc:/icons/ds_"
			}
			got := string(ResolveIcon(k, State(state)))
			return got == stem+state+".svg" && strings.HasSuffix(got, ".svg")
		},
		gen.Bool(),
		gen.AlphaString().SuchThat(func(s string) bool { return s != "" }),
	))

	properties.TestingRun(t)
}
