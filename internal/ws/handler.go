// Package ws streams icon resolutions to diagram editors over WebSocket.
package ws

import (
	"net/http"

	"github.com/HerbHall/stationviz/pkg/sld"
	"github.com/coder/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Resolver maps a node kind and state to an icon.
// Defined here (consumer-side) so the stream can share the HTTP handler's
// instrumented resolver.
type Resolver interface {
	Resolve(kind sld.NodeKind, state sld.State) sld.IconPath
}

// Handler provides the live icon WebSocket endpoint.
type Handler struct {
	hub            *Hub
	resolver       Resolver
	originPatterns []string
	logger         *zap.Logger
}

// Compile-time check that Handler implements the server interface.
var _ interface {
	RegisterRoutes(mux *http.ServeMux)
} = (*Handler)(nil)

// NewHandler creates a WebSocket handler. originPatterns lists extra
// origins allowed to connect; same-origin requests are always accepted.
func NewHandler(resolver Resolver, originPatterns []string, logger *zap.Logger) *Handler {
	return &Handler{
		hub:            NewHub(logger),
		resolver:       resolver,
		originPatterns: originPatterns,
		logger:         logger,
	}
}

// RegisterRoutes registers WebSocket routes on the server mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/ws/icons", h.handleIconStream)
}

// Collector exposes the connected client count as a Prometheus gauge.
func (h *Handler) Collector() prometheus.Collector {
	return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "stationviz",
		Name:      "ws_clients",
		Help:      "Number of connected icon stream clients.",
	}, func() float64 { return float64(h.hub.ClientCount()) })
}

// handleIconStream upgrades the connection and answers resolve requests
// until the client disconnects.
func (h *Handler) handleIconStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.originPatterns,
	})
	if err != nil {
		h.logger.Error("websocket accept failed", zap.Error(err))
		return
	}

	client := &Client{
		conn:     conn,
		remote:   r.RemoteAddr,
		send:     make(chan Message, sendBuffer),
		resolver: h.resolver,
		logger:   h.logger,
	}

	h.hub.Register(client)

	// Run read and write pumps. When either exits, clean up.
	ctx := r.Context()
	done := make(chan struct{})
	go func() {
		client.writePump(ctx)
		close(done)
	}()

	// readPump blocks until client disconnects.
	client.readPump(ctx)

	h.hub.Unregister(client)
	conn.Close(websocket.StatusNormalClosure, "")
	<-done
}
