package router

import (
	"net/http"
	"strings"

	"github.com/shandysiswandi/userdir/internal/pkg/config"
	"github.com/shandysiswandi/userdir/internal/pkg/problem"
)

func middlewareMaintenance(cfg config.Config, pd *problem.Mapper) Middleware {
	endpoints := make(map[string]struct{})
	if cfg != nil {
		for _, endpoint := range cfg.GetArray("app.maintenance.endpoints") {
			endpoint = strings.TrimSpace(endpoint)
			if endpoint == "" {
				continue
			}
			endpoints[endpoint] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := matchedRoutePath(r)
			if _, blocked := endpoints[route]; blocked {
				writeJSON(w, pd.New(http.StatusServiceUnavailable, "service is under maintenance"), http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
