package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (srv *Server) InjectRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   srv.Config.GetAllowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Failed-Side-Effects"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(api chi.Router) {
		// signed by the identity provider, no session
		api.Post("/webhooks/identity", srv.WebhookHandler.HandleIdentityWebhook)

		api.Group(func(protected chi.Router) {
			protected.Use(srv.Middleware.SessionMiddleware())

			protected.Route("/assets", func(assets chi.Router) {
				assets.Get("/", srv.AssetHandler.ListAssets)
				assets.Post("/", srv.AssetHandler.CreateAsset)
				assets.Get("/stats", srv.AssetHandler.GetAssetStats)
				assets.Get("/{assetId}", srv.AssetHandler.GetAsset)
				assets.Put("/{assetId}", srv.AssetHandler.UpdateAsset)
				assets.Delete("/{assetId}", srv.AssetHandler.DeleteAsset)
			})

			protected.Post("/reports/generate", srv.ReportHandler.GenerateReport)
			protected.Get("/directory/members", srv.DirectoryHandler.ListMembers)
		})
	})

	return r
}
