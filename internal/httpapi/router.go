// Package httpapi exposes the house and person services over HTTP.
package httpapi

import (
	"net/http"

	"github.com/Nikolay1992167/SpringMVC-sub000/internal/domain"
	"github.com/Nikolay1992167/SpringMVC-sub000/servicecache"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// HouseService is the contract the house routes are served from.
type HouseService = servicecache.EntityService[domain.HouseRequest, domain.HouseResponse]

// PersonService is the contract the person routes are served from.
type PersonService = servicecache.EntityService[domain.PersonRequest, domain.PersonResponse]

// Router builds the HTTP handler tree.
type Router struct {
	houses  HouseService
	persons PersonService
	logger  *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(houses HouseService, persons PersonService, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{houses: houses, persons: persons, logger: logger}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(Logger(rt.logger))

	router.Get("/health", rt.healthCheck)

	validator := newRequestValidator()
	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/houses", func(r chi.Router) {
			mountEntity(r, newEntityHandler(rt.houses, validator, rt.logger, "house"))
		})
		r.Route("/persons", func(r chi.Router) {
			mountEntity(r, newEntityHandler(rt.persons, validator, rt.logger, "person"))
		})
	})

	return router
}

func mountEntity[Req, Resp any](r chi.Router, h *entityHandler[Req, Resp]) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{uuid}", h.get)
	r.Put("/{uuid}", h.update)
	r.Delete("/{uuid}", h.delete)
}

func (rt *Router) healthCheck(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
