// Package iconapi serves single-line diagram icon lookups over HTTP.
package iconapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/HerbHall/stationviz/internal/server"
	"github.com/HerbHall/stationviz/pkg/sld"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// MaxBatchNodes caps the number of nodes in one batch request.
const MaxBatchNodes = 1000

// maxBodyBytes bounds batch request bodies.
const maxBodyBytes = 1 << 20

var iconResolutionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "stationviz",
		Name:      "icon_resolutions_total",
		Help:      "Total number of icon resolutions by node kind.",
	},
	[]string{"kind"},
)

func init() {
	prometheus.MustRegister(iconResolutionsTotal)
}

var validate = validator.New()

// Compile-time check that Handler implements the server interface.
var _ server.RouteRegistrar = (*Handler)(nil)

// Handler provides the icon lookup endpoints.
type Handler struct {
	theme  sld.Theme
	logger *zap.Logger
}

// NewHandler creates an icon handler resolving against theme.
func NewHandler(theme sld.Theme, logger *zap.Logger) *Handler {
	return &Handler{theme: theme, logger: logger}
}

// RegisterRoutes registers the icon routes on the server mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/icons/resolve", h.handleResolve)
	mux.HandleFunc("POST /api/v1/icons/resolve", h.handleResolveBatch)
	mux.HandleFunc("GET /api/v1/icons/manifest", h.handleManifest)
}

// Resolve resolves one node and records the lookup.
func (h *Handler) Resolve(kind sld.NodeKind, state sld.State) sld.IconPath {
	iconResolutionsTotal.WithLabelValues(metricLabel(kind)).Inc()
	return h.theme.Resolve(kind, state)
}

// metricLabel keeps label cardinality bounded for unmapped kinds.
func metricLabel(kind sld.NodeKind) string {
	if kind.Known() {
		return kind.String()
	}
	return "unknown"
}

// ResolveResponse is the response for GET /icons/resolve.
type ResolveResponse struct {
	Kind     sld.NodeKind `json:"kind" example:"2"`
	KindName string       `json:"kind_name" example:"breaker"`
	State    sld.State    `json:"state,omitempty" example:"opened"`
	Icon     sld.IconPath `json:"icon" example:"qrc:/icons/cbr_opened.svg"`
}

// handleResolve resolves the icon of a single node.
//
//	@Summary		Resolve node icon
//	@Description	Returns the icon path for a node kind (name or numeric code) and optional state.
//	@Tags			icons
//	@Produce		json
//	@Param			kind	query		string	true	"Node kind name or numeric code"
//	@Param			state	query		string	false	"State label, e.g. opened"
//	@Success		200		{object}	ResolveResponse
//	@Failure		400		{object}	server.Problem
//	@Router			/icons/resolve [get]
func (h *Handler) handleResolve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	kind, err := sld.ParseNodeKind(q.Get("kind"))
	if err != nil {
		server.BadRequest(w, err.Error(), r.URL.Path)
		return
	}
	state := sld.State(q.Get("state"))

	writeJSON(w, ResolveResponse{
		Kind:     kind,
		KindName: kind.String(),
		State:    state,
		Icon:     h.Resolve(kind, state),
	})
}

// BatchRequest is the body of POST /icons/resolve. Every node must carry a
// kind; the label is echoed back untouched.
type BatchRequest struct {
	Nodes []sld.Node `json:"nodes" validate:"required,min=1,max=1000,dive"`
}

// NodeIcon pairs a node ID with its icon.
type NodeIcon struct {
	ID    string       `json:"id" example:"Sub1/VL1/Bay1/CBR1"`
	Label string       `json:"label,omitempty" example:"CBR1"`
	Icon  sld.IconPath `json:"icon" example:"qrc:/icons/cbr_opened.svg"`
}

// BatchResponse is the response for POST /icons/resolve.
type BatchResponse struct {
	Icons []NodeIcon `json:"icons"`
}

// handleResolveBatch resolves icons for a list of nodes, preserving order.
//
//	@Summary		Resolve node icons in bulk
//	@Description	Resolves up to 1000 nodes in one call. Results are returned in request order.
//	@Tags			icons
//	@Accept			json
//	@Produce		json
//	@Param			request	body		BatchRequest	true	"Nodes to resolve"
//	@Success		200		{object}	BatchResponse
//	@Failure		400		{object}	server.Problem
//	@Router			/icons/resolve [post]
func (h *Handler) handleResolveBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		server.BadRequest(w, "invalid request body: "+err.Error(), r.URL.Path)
		return
	}
	if err := validate.Struct(&req); err != nil {
		server.BadRequest(w, formatValidationError(err), r.URL.Path)
		return
	}

	resp := BatchResponse{Icons: make([]NodeIcon, len(req.Nodes))}
	for i, n := range req.Nodes {
		resp.Icons[i] = NodeIcon{ID: n.ID, Label: n.Label, Icon: h.Resolve(n.Kind, n.State)}
	}

	h.logger.Debug("resolved icon batch", zap.Int("nodes", len(req.Nodes)))
	writeJSON(w, resp)
}

// ManifestResponse is the response for GET /icons/manifest.
type ManifestResponse struct {
	Theme    sld.Theme       `json:"theme"`
	Fallback sld.IconPath    `json:"fallback" example:"qrc:/icons/unknown.svg"`
	Kinds    []sld.IconEntry `json:"kinds"`
}

// handleManifest lists every known node kind with its default icon.
//
//	@Summary		Icon manifest
//	@Description	Lists known node kinds, whether their icon depends on state, and their default icon.
//	@Tags			icons
//	@Produce		json
//	@Success		200	{object}	ManifestResponse
//	@Router			/icons/manifest [get]
func (h *Handler) handleManifest(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, ManifestResponse{
		Theme:    h.theme,
		Fallback: h.theme.Fallback(),
		Kinds:    sld.Manifest(h.theme),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
