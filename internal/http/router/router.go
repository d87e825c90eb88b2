package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "userdir/docs" // registers the swagger spec
	dirhandler "userdir/internal/http/handlers/directory"
	"userdir/internal/http/handlers/health"
	"userdir/internal/http/handlers/page"
	"userdir/internal/http/responses"
	"userdir/internal/logging"
)

func NewRouter(
	logger logging.Logger,
	healthHandler *health.Handler,
	directoryHandler *dirhandler.Handler,
	pageHandler *page.Handler,
) chi.Router {
	r := chi.NewRouter()

	useBaseMiddlewares(r, logger)

	// HTML
	r.Get("/", pageHandler.Index)
	r.Route("/directory/{id}", func(r chi.Router) {
		r.Get("/", pageHandler.Show)
		r.Post("/sort/{key}", pageHandler.Sort)
		r.Post("/next", pageHandler.Next)
		r.Post("/prev", pageHandler.Prev)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.Check)

		r.Route("/views", func(r chi.Router) {
			r.Post("/", directoryHandler.Mount)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", directoryHandler.Get)
				r.Delete("/", directoryHandler.Teardown)
				r.Put("/search", directoryHandler.Search)
				r.Post("/sort", directoryHandler.Sort)
				r.Post("/page/next", directoryHandler.NextPage)
				r.Post("/page/prev", directoryHandler.PrevPage)
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteNotFound(w, r)
	})

	return r
}
