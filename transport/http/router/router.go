package router

import (
	"github.com/go-chi/chi/v5"

	"worktrack/internal/handlers/health"
	"worktrack/internal/handlers/todo"
)

type DomainHandlers struct {
	Todo   todo.Handler
	Health health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Todo.Router(router)
	r.DomainHandlers.Health.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
