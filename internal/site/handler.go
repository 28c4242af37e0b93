package site

import (
	"log/slog"
	"net/http"

	"github.com/steeplehq/steeple/pkg/handlers"
	"github.com/steeplehq/steeple/pkg/routes"
)

// Handler serves composed pages to the public site.
type Handler struct {
	composer *Composer
	logger   *slog.Logger
}

// NewHandler creates a Handler over the given composer.
func NewHandler(composer *Composer, logger *slog.Logger) *Handler {
	return &Handler{
		composer: composer,
		logger:   logger.With("handler", "site"),
	}
}

// Routes returns the route group definition for public site endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{tenant}/pages/{slug}", Handler: h.RenderPage},
		},
	}
}

// RenderPage composes and returns the tenant's page by slug.
func (h *Handler) RenderPage(w http.ResponseWriter, r *http.Request) {
	tenantID := r.PathValue("tenant")
	slug := r.PathValue("slug")

	page, err := h.composer.ComposePage(r.Context(), tenantID, slug)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, page)
}
