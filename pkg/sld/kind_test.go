package sld

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseNodeKind(t *testing.T) {
	tests := []struct {
		in   string
		want NodeKind
	}{
		{"busbar", NodeKindBusbar},
		{"Bay", NodeKindBay},
		{" breaker ", NodeKindBreaker},
		{"cbr", NodeKindBreaker},
		{"ds", NodeKindDisconnector},
		{"transformer", NodeKindTransformer},
		{"label", NodeKindVoltageLevelLabel},
		{"unknown", NodeKindUnknown},
		{"2", NodeKindBreaker},
		{"99", NodeKind(99)},
		{"-1", NodeKind(-1)},
	}
	for _, tt := range tests {
		got, err := ParseNodeKind(tt.in)
		if err != nil {
			t.Errorf("ParseNodeKind(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseNodeKind(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseNodeKind_EquipmentTypes(t *testing.T) {
	tests := []struct {
		in   string
		want NodeKind
	}{
		{"BUSBAR", NodeKindBusbar},
		{"BBS", NodeKindBusbar},
		{"BUSBARSECTION", NodeKindBusbar},
		{"CBR", NodeKindBreaker},
		{"CB", NodeKindBreaker},
		{"XCBR", NodeKindBreaker},
		{"BREAKER", NodeKindBreaker},
		{"DIS", NodeKindDisconnector},
		{"DS", NodeKindDisconnector},
		{"XSWI", NodeKindDisconnector},
		{"SWITCH", NodeKindDisconnector},
		{"DISCONNECTOR", NodeKindDisconnector},
		{"PTR", NodeKindTransformer},
		{"TRF", NodeKindTransformer},
		{"POWERTRANSFORMER", NodeKindTransformer},
		{"TRANSFORMER", NodeKindTransformer},
		{"ES", NodeKindUnknown},
		{"EGND", NodeKindUnknown},
		{"TCTR", NodeKindUnknown},
		{"VT", NodeKindUnknown},
		{"LINE", NodeKindUnknown},
		{"FEEDER", NodeKindUnknown},
		{"CABLE", NodeKindUnknown},
	}
	for _, tt := range tests {
		got, err := ParseNodeKind(tt.in)
		if err != nil {
			t.Errorf("ParseNodeKind(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseNodeKind(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseNodeKind_Invalid(t *testing.T) {
	for _, in := range []string{"", "  ", "capacitor", "2.5"} {
		_, err := ParseNodeKind(in)
		if !errors.Is(err, ErrUnknownKind) {
			t.Errorf("ParseNodeKind(%q) err = %v, want ErrUnknownKind", in, err)
		}
	}
}

func TestNodeKindString(t *testing.T) {
	if got := NodeKindDisconnector.String(); got != "disconnector" {
		t.Errorf("String() = %q", got)
	}
	if got := NodeKindUnknown.String(); got != "unknown" {
		t.Errorf("String() = %q", got)
	}
	if got := NodeKind(42).String(); got != "unknown(42)" {
		t.Errorf("String() = %q", got)
	}
}

func TestNodeKindRoundTrip(t *testing.T) {
	for _, k := range KnownKinds {
		got, err := ParseNodeKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseNodeKind(%q) = %d, %v; want %d", k.String(), got, err, k)
		}
		if !k.Known() {
			t.Errorf("%s.Known() = false", k)
		}
	}
	if NodeKindUnknown.Known() {
		t.Error("NodeKindUnknown.Known() = true")
	}
}

func TestNodeKindUnmarshalJSON(t *testing.T) {
	var got struct {
		A NodeKind `json:"a"`
		B NodeKind `json:"b"`
		C NodeKind `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"a":3,"b":"breaker","c":-7}`), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.A != NodeKindDisconnector || got.B != NodeKindBreaker || got.C != NodeKind(-7) {
		t.Errorf("got %+v", got)
	}

	var k NodeKind
	if err := json.Unmarshal([]byte(`"capacitor"`), &k); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("err = %v, want ErrUnknownKind", err)
	}
	if err := json.Unmarshal([]byte(`true`), &k); err == nil {
		t.Error("expected error for boolean kind")
	}
}

func TestNodeUnmarshalJSON(t *testing.T) {
	var n Node
	if err := json.Unmarshal([]byte(`{"id":"Sub1/VL1/Q1/QA1","kind":"XCBR","label":"QA1","state":"opened"}`), &n); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := Node{ID: "Sub1/VL1/Q1/QA1", Kind: NodeKindBreaker, Label: "QA1", State: StateOpened}
	if n != want {
		t.Errorf("node = %+v, want %+v", n, want)
	}

	if err := json.Unmarshal([]byte(`{"id":"BB1","kind":0}`), &n); err != nil || n.Kind != NodeKindBusbar {
		t.Errorf("explicit busbar: kind = %s, err = %v", n.Kind, err)
	}

	for _, in := range []string{`{"id":"X1","state":"closed"}`, `{"id":"X1","kind":null}`} {
		if err := json.Unmarshal([]byte(in), &n); !errors.Is(err, ErrMissingKind) {
			t.Errorf("Unmarshal(%s) err = %v, want ErrMissingKind", in, err)
		}
	}
}
