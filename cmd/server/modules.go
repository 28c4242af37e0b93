package main

import (
	"encoding/json"
	"net/http"

	"github.com/steeplehq/steeple/internal/api"
	"github.com/steeplehq/steeple/internal/config"
	"github.com/steeplehq/steeple/internal/infrastructure"
	"github.com/steeplehq/steeple/internal/site"
	"github.com/steeplehq/steeple/pkg/module"
)

type Modules struct {
	API  *module.Module
	Site *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, domain, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	siteModule, err := site.NewModule(cfg, infra, domain)
	if err != nil {
		return nil, err
	}

	return &Modules{
		API:  apiModule,
		Site: siteModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.Site)
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"status": "not ready"})
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
	})

	return router
}
