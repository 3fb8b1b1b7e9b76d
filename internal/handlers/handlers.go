package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/groupbuy/procurements/docs"
	categorieshandlers "github.com/groupbuy/procurements/internal/handlers/categories"
	participationhandlers "github.com/groupbuy/procurements/internal/handlers/participation"
	procurementshandlers "github.com/groupbuy/procurements/internal/handlers/procurements"
	"github.com/groupbuy/procurements/internal/service"
)

type ProcurementHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type ParticipationHandler interface {
	Join(w http.ResponseWriter, r *http.Request)
	Leave(w http.ResponseWriter, r *http.Request)
}

type CategoryHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	ProcurementHandler   ProcurementHandler
	ParticipationHandler ParticipationHandler
	CategoryHandler      CategoryHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		ProcurementHandler:   procurementshandlers.New(s.ProcurementService),
		ParticipationHandler: participationhandlers.New(s.ParticipationService),
		CategoryHandler:      categorieshandlers.New(s.CategoryService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/procurements", func(r chi.Router) {
		r.Get("/", h.ProcurementHandler.List)
		r.Post("/", h.ProcurementHandler.Create)
		// static segment, registered alongside {id}; chi prefers it
		r.Get("/categories", h.CategoryHandler.List)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.ProcurementHandler.Get)
			r.Post("/join", h.ParticipationHandler.Join)
			r.Post("/leave", h.ParticipationHandler.Leave)
		})
	})

	return r
}
