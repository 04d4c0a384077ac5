// Package v1 provides the v1 API routes.
package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fragbase/fragbase"
	"github.com/fragbase/fragbase/application/service"
	"github.com/fragbase/fragbase/domain/fragment"
	"github.com/fragbase/fragbase/infrastructure/api/middleware"
	"github.com/fragbase/fragbase/infrastructure/api/v1/dto"
)

// FragmentsRouter handles fragment API endpoints.
type FragmentsRouter struct {
	client *fragbase.Client
	logger *slog.Logger
}

// NewFragmentsRouter creates a new FragmentsRouter.
func NewFragmentsRouter(client *fragbase.Client) *FragmentsRouter {
	return &FragmentsRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for fragment endpoints.
func (r *FragmentsRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.List)
	router.Post("/", r.Create)
	router.Get("/{id}", r.Get)
	router.Get("/{id}/relations", r.Relations)

	return router
}

// List handles GET /api/v1/fragments.
func (r *FragmentsRouter) List(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	pagination := ParsePagination(req)

	fragments, total, err := r.client.Fragments.List(ctx, pagination.Limit(), pagination.Offset())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	response := dto.FragmentListResponse{
		Data: fragmentsToDTO(fragments),
		Meta: pagination.Meta(total),
	}
	middleware.WriteJSON(w, http.StatusOK, response)
}

// Get handles GET /api/v1/fragments/{id}.
func (r *FragmentsRouter) Get(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	id, err := parseID(req)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	f, err := r.client.Fragments.Get(ctx, id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.FragmentResponse{Data: fragmentToDTO(f)})
}

// Create handles POST /api/v1/fragments.
func (r *FragmentsRouter) Create(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	var body dto.FragmentCreateRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req,
			middleware.NewAPIError(http.StatusBadRequest, "invalid request body", err), r.logger)
		return
	}

	created, err := r.client.Fragments.Create(ctx, service.FragmentCreateParams{
		Title:   body.Title,
		Content: body.Content,
	})
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, dto.FragmentResponse{Data: fragmentToDTO(created)})
}

// Relations handles GET /api/v1/fragments/{id}/relations.
func (r *FragmentsRouter) Relations(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	id, err := parseID(req)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	relations, err := r.client.Fragments.Relations(ctx, id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	data := make([]dto.RelationData, 0, len(relations))
	for _, rel := range relations {
		data = append(data, dto.RelationData{
			ParentID:      rel.ParentID(),
			ChildID:       rel.ChildID(),
			Priority:      rel.Priority(),
			Bidirectional: rel.Bidirectional(),
		})
	}
	middleware.WriteJSON(w, http.StatusOK, dto.RelationListResponse{Data: data})
}

func parseID(req *http.Request) (int64, error) {
	idStr := chi.URLParam(req, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, middleware.NewAPIError(http.StatusBadRequest, "invalid id", err)
	}
	return id, nil
}

func fragmentToDTO(f fragment.Fragment) dto.FragmentData {
	return dto.FragmentData{
		ID:        f.ID(),
		Title:     f.Title(),
		Content:   f.Content(),
		CreatedAt: f.CreatedAt(),
		UpdatedAt: f.UpdatedAt(),
		CreatorID: f.CreatorID(),
		OriginID:  f.OriginID(),
		FileName:  f.FileName(),
	}
}

func fragmentsToDTO(fragments []fragment.Fragment) []dto.FragmentData {
	data := make([]dto.FragmentData, 0, len(fragments))
	for _, f := range fragments {
		data = append(data, fragmentToDTO(f))
	}
	return data
}
