package ws

import (
	"fmt"
	"sync"
	"testing"

	"github.com/HerbHall/stationviz/pkg/sld"
	"github.com/coder/websocket"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

// themeResolver resolves against a theme without metrics.
type themeResolver struct{ theme sld.Theme }

func (r themeResolver) Resolve(kind sld.NodeKind, state sld.State) sld.IconPath {
	return r.theme.Resolve(kind, state)
}

func newTestClient(remote string) *Client {
	return &Client{
		conn:     nil, // Not needed for hub tests
		remote:   remote,
		send:     make(chan Message, sendBuffer),
		resolver: themeResolver{sld.DefaultTheme},
		logger:   testLogger(),
	}
}

// TestNewHub verifies that NewHub creates a hub with no clients.
func TestNewHub(t *testing.T) {
	hub := NewHub(testLogger())

	if hub.clients == nil {
		t.Error("hub.clients map is nil")
	}
	if hub.ClientCount() != 0 {
		t.Errorf("ClientCount() = %d, want 0", hub.ClientCount())
	}
}

// TestRegisterUnregister verifies the client count and send channel lifecycle.
func TestRegisterUnregister(t *testing.T) {
	hub := NewHub(testLogger())
	client := newTestClient("10.0.0.1:5000")

	hub.Register(client)
	if hub.ClientCount() != 1 {
		t.Errorf("ClientCount() = %d, want 1", hub.ClientCount())
	}

	hub.Unregister(client)
	if hub.ClientCount() != 0 {
		t.Errorf("ClientCount() = %d, want 0", hub.ClientCount())
	}
	if _, ok := <-client.send; ok {
		t.Error("expected send channel to be closed after Unregister")
	}

	// A second Unregister must not panic on the closed channel.
	hub.Unregister(client)
}

// TestConcurrentRegisterUnregister exercises the hub under the race detector.
func TestConcurrentRegisterUnregister(t *testing.T) {
	hub := NewHub(testLogger())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c := newTestClient(fmt.Sprintf("10.0.0.%d:5000", i))
			hub.Register(c)
			_ = hub.ClientCount()
			hub.Unregister(c)
		}(i)
	}
	wg.Wait()

	if hub.ClientCount() != 0 {
		t.Errorf("ClientCount() = %d, want 0", hub.ClientCount())
	}
}

func TestHandleFrame(t *testing.T) {
	c := newTestClient("test")

	tests := []struct {
		name     string
		typ      websocket.MessageType
		data     string
		wantType MessageType
		wantIcon sld.IconPath
	}{
		{"breaker opened", websocket.MessageText, `{"id":"CBR1","kind":2,"state":"opened"}`, MessageIconResolved, "qrc:/icons/cbr_opened.svg"},
		{"disconnector default", websocket.MessageText, `{"id":"DS1","kind":"disconnector"}`, MessageIconResolved, "qrc:/icons/ds_opened.svg"},
		{"unmapped kind", websocket.MessageText, `{"id":"X","kind":42,"state":"closed"}`, MessageIconResolved, "qrc:/icons/unknown.svg"},
		{"unknown kind name", websocket.MessageText, `{"id":"X","kind":"capacitor"}`, MessageIconError, ""},
		{"logical node class", websocket.MessageText, `{"id":"Q1","kind":"XSWI","state":"intermediate"}`, MessageIconResolved, "qrc:/icons/ds_intermediate.svg"},
		{"missing kind", websocket.MessageText, `{"id":"X","state":"closed"}`, MessageIconError, ""},
		{"not json", websocket.MessageText, `hello`, MessageIconError, ""},
		{"binary frame", websocket.MessageBinary, `{"kind":0}`, MessageIconError, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := c.handleFrame(tt.typ, []byte(tt.data))
			if msg.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", msg.Type, tt.wantType)
			}
			if msg.Icon != tt.wantIcon {
				t.Errorf("Icon = %q, want %q", msg.Icon, tt.wantIcon)
			}
			if tt.wantType == MessageIconError && msg.Error == "" {
				t.Error("expected error text on icon.error message")
			}
			if msg.Timestamp.IsZero() {
				t.Error("expected timestamp to be set")
			}
		})
	}
}

// TestEnqueueDropsWhenBufferFull verifies the reader never blocks on a slow writer.
func TestEnqueueDropsWhenBufferFull(t *testing.T) {
	c := newTestClient("slow")
	for i := 0; i < sendBuffer+10; i++ {
		c.enqueue(Message{Type: MessageIconResolved, ID: fmt.Sprint(i)})
	}
	if len(c.send) != sendBuffer {
		t.Errorf("len(send) = %d, want %d", len(c.send), sendBuffer)
	}
}
