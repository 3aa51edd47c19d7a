package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/vaultpass/passcheck/internal/config"
	"github.com/vaultpass/passcheck/internal/crypto"
	"github.com/vaultpass/passcheck/internal/handler"
	"github.com/vaultpass/passcheck/internal/middleware"
	"github.com/vaultpass/passcheck/internal/service"
	"github.com/vaultpass/passcheck/internal/strength"
)

// New wires services and handlers into a chi router. ctx bounds the
// rate limiter's background cleanup.
func New(ctx context.Context, cfg config.Config) http.Handler {
	analyzer := strength.NewAnalyzer(strength.DefaultDenylist())

	genService := service.NewGeneratorService(crypto.NewGenerator(nil), analyzer, cfg.MaxPasswordLength)
	genHandler := handler.NewGeneratorHandler(genService)

	analyzeService := service.NewAnalyzerService(analyzer)
	analyzeHandler := handler.NewAnalyzerHandler(analyzeService)

	r := chi.NewRouter()

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	r.Use(c.Handler)
	r.Use(chimw.RequestID)
	// Forwarding headers are client-controlled unless a proxy rewrites them.
	if cfg.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Post("/api/v1/analyze", analyzeHandler.HandleAnalyze)
	})

	return r
}
