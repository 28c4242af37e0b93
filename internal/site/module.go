package site

import (
	"net/http"

	"github.com/steeplehq/steeple/internal/api"
	"github.com/steeplehq/steeple/internal/config"
	"github.com/steeplehq/steeple/internal/infrastructure"
	"github.com/steeplehq/steeple/internal/sections"
	"github.com/steeplehq/steeple/pkg/middleware"
	"github.com/steeplehq/steeple/pkg/module"
	"github.com/steeplehq/steeple/pkg/routes"
)

// NewModule creates the public site module over the shared domain
// systems, wiring the section resolver and page composer.
func NewModule(
	cfg *config.Config,
	infra *infrastructure.Infrastructure,
	domain *api.Domain,
) (*module.Module, error) {
	logger := infra.Logger.With("module", "site")

	resolver := sections.NewResolver(sections.Sources{
		Messages:     domain.Messages,
		Events:       domain.Events,
		Videos:       domain.Videos,
		BibleStudies: domain.BibleStudies,
		DailyBread:   domain.DailyBread,
		Campuses:     domain.Campuses,
	}, logger)

	composer, err := NewComposer(&cfg.Site, domain.Pages, resolver, logger)
	if err != nil {
		return nil, err
	}

	infra.Lifecycle.OnShutdown(func() {
		<-infra.Lifecycle.Context().Done()
		composer.Close()
	})

	mux := http.NewServeMux()
	routes.Register(mux, NewHandler(composer, logger).Routes())

	m := module.New(cfg.Site.BasePath, mux)
	m.Use(middleware.Logger(logger))

	return m, nil
}
