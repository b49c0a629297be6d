/*
Package proxy implements the local development proxy that fronts the
marketplace API.

In development the client (and the browser frontend during local work)
talks to a relative "/api" prefix instead of the deployed origin. This
proxy serves that prefix: it strips the prefix, forwards the request to
the upstream backend, and answers upstream failures with a JSON error
body. It also carries the local observability surface: request logging,
per-IP rate limiting, and Prometheus metrics.
*/
package proxy

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/mukky254/ukulima-go/internal/configs"
	"github.com/mukky254/ukulima-go/internal/pkg/limiter"
	"github.com/mukky254/ukulima-go/internal/pkg/logx"
)

const (
	// ProxyRate and ProxyBurst bound how fast a single client may hit
	// the upstream through the proxy.
	ProxyRate  = 20
	ProxyBurst = 40
)

// New builds the proxy's HTTP handler from its configuration.
func New(cfg *configs.ProxyConfig, m *Metrics) (http.Handler, error) {
	upstream, err := url.Parse(cfg.UpstreamURL)
	if err != nil {
		return nil, fmt.Errorf("parse upstream url: %w", err)
	}

	rp := httputil.NewSingleHostReverseProxy(upstream)

	director := rp.Director
	rp.Director = func(req *http.Request) {
		director(req)
		// The upstream routes on its own Host header, not the proxy's.
		req.Host = upstream.Host
	}

	rp.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("upstream unreachable")
		respondError(w, http.StatusBadGateway, "Upstream API is unavailable.")
	}

	ipLimiter := limiter.NewIPRateLimiter(rate.Limit(ProxyRate), ProxyBurst)

	corsAllowedOrigins := cfg.AllowedOrigins
	if len(corsAllowedOrigins) == 0 {
		corsAllowedOrigins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	})

	r := chi.NewRouter()

	r.Use(c.Handler)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)
	r.Use(m.Middleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{
			"status":   "ok",
			"service":  "ukulima devproxy",
			"upstream": cfg.UpstreamURL,
		})
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(m.Reg, promhttp.HandlerOpts{}))

	r.Handle("/api/*", ipLimiter.Middleware(http.StripPrefix("/api", rp)))

	return r, nil
}
