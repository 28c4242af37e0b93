// Package api assembles the staff API module with all domain systems
// and route registration.
package api

import (
	"net/http"

	"github.com/steeplehq/steeple/internal/config"
	"github.com/steeplehq/steeple/internal/infrastructure"
	"github.com/steeplehq/steeple/pkg/middleware"
	"github.com/steeplehq/steeple/pkg/module"
)

// NewModule creates the API module with all domain handlers and
// middleware, returning the assembled domain systems for reuse by
// other modules.
func NewModule(
	cfg *config.Config,
	infra *infrastructure.Infrastructure,
) (*module.Module, *Domain, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	mux := http.NewServeMux()
	registerRoutes(mux, domain, cfg)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, domain, nil
}
