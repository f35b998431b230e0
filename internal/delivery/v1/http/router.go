package http

import (
	"net/http"

	_ "github.com/beautix-tech/admin-panel/docs" // Импорт сгенерированных файлов
	"github.com/beautix-tech/admin-panel/internal/cfg"
	"github.com/beautix-tech/admin-panel/internal/usecase"
	"github.com/beautix-tech/admin-panel/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(catalogUC usecase.CatalogUC, uploadCfg *cfg.UploadCfg) error {
	renderer, err := NewRenderer(r.logger)
	if err != nil {
		return err
	}

	r.router.Use(requestID, requestLogger(r.logger), middleware.Recoverer)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Handle("/static/*", http.StripPrefix("/static/", StaticHandler()))

	prHandler := NewProductHandler(catalogUC, renderer, r.logger)
	catHandler := NewCategoryHandler(catalogUC, renderer, r.logger)
	dashHandler := NewDashboardHandler(catalogUC, renderer, r.logger)
	shell := NewShellHandler(prHandler, catHandler)

	r.router.Get("/", shell.Serve)
	r.router.Get("/dashboard", dashHandler.Page)

	registerProductRoutes(r.router, prHandler)
	registerCategoryRoutes(r.router, catHandler)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		upHandler := NewUploadHandler(catalogUC, uploadCfg, r.logger)
		registerUploadRoutes(v1, upHandler)
	})

	return nil
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Post("/form", prHandler.SubmitForm)
		pr.Get("/{id}/delete", prHandler.ConfirmDelete)
		pr.Post("/{id}/delete", prHandler.Delete)
	})
}

func registerCategoryRoutes(router chi.Router, catHandler *CategoryHandler) {
	router.Route("/categories", func(cr chi.Router) {
		cr.Post("/form", catHandler.SubmitForm)
		cr.Get("/{id}/delete", catHandler.ConfirmDelete)
		cr.Post("/{id}/delete", catHandler.Delete)
	})
}

func registerUploadRoutes(router chi.Router, upHandler *UploadHandler) {
	router.Route("/upload", func(up chi.Router) {
		up.Post("/single", upHandler.Single)
		up.Post("/multiple", upHandler.Multiple)
	})
}
