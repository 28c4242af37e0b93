package api

import (
	"net/http"

	"github.com/steeplehq/steeple/internal/config"
	"github.com/steeplehq/steeple/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) {
	routes.Register(
		mux,
		domain.Messages.Handler().Routes(),
		domain.Events.Handler().Routes(),
		domain.Videos.Handler().Routes(),
		domain.BibleStudies.Handler().Routes(),
		domain.DailyBread.Handler().Routes(),
		domain.Campuses.Handler().Routes(),
		domain.Pages.Handler().Routes(),
		domain.Media.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
	)
}
