package version

import (
	"strings"
	"testing"
)

func TestInfoContainsVersion(t *testing.T) {
	if !strings.Contains(Info(), Short()) {
		t.Errorf("Info() = %q, want it to contain %q", Info(), Short())
	}
}

func TestMapKeys(t *testing.T) {
	m := Map()
	for _, k := range []string{"version", "commit", "build_date", "go"} {
		if _, ok := m[k]; !ok {
			t.Errorf("Map() missing key %q", k)
		}
	}
}
