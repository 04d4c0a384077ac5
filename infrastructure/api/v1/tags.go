package v1

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fragbase/fragbase"
	"github.com/fragbase/fragbase/infrastructure/api/middleware"
	"github.com/fragbase/fragbase/infrastructure/api/v1/dto"
)

// TagsRouter handles tag API endpoints.
type TagsRouter struct {
	client *fragbase.Client
	logger *slog.Logger
}

// NewTagsRouter creates a new TagsRouter.
func NewTagsRouter(client *fragbase.Client) *TagsRouter {
	return &TagsRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for tag endpoints.
func (r *TagsRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.List)
	router.Get("/{id}/taggings", r.Taggings)

	return router
}

// List handles GET /api/v1/tags.
func (r *TagsRouter) List(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	pagination := ParsePagination(req)

	tags, total, err := r.client.Tags.List(ctx, pagination.Limit(), pagination.Offset())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	data := make([]dto.TagData, 0, len(tags))
	for _, t := range tags {
		data = append(data, dto.TagData{
			ID:                    t.ID(),
			Name:                  t.Name(),
			DescriptionFragmentID: t.DescriptionFragmentID(),
		})
	}

	middleware.WriteJSON(w, http.StatusOK, dto.TagListResponse{
		Data: data,
		Meta: pagination.Meta(total),
	})
}

// Taggings handles GET /api/v1/tags/{id}/taggings.
func (r *TagsRouter) Taggings(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	id, err := parseID(req)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	taggings, err := r.client.Tags.Taggings(ctx, id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	data := make([]dto.TaggingData, 0, len(taggings))
	for _, g := range taggings {
		data = append(data, dto.TaggingData{
			TagID:      g.TagID(),
			TargetID:   g.Target().ID(),
			TargetType: int(g.Target().Kind()),
		})
	}
	middleware.WriteJSON(w, http.StatusOK, dto.TaggingListResponse{Data: data})
}
