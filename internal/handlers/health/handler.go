package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"worktrack/infras/postgres"
	"worktrack/transport/http/response"
)

type Handler struct {
	db *postgres.Connection
}

func New(db *postgres.Connection) Handler {
	return Handler{
		db: db,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports liveness; the store must answer a ping or the whole
// service counts as unhealthy (list reads are fatal without it).
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if handler.db == nil || handler.db.Read == nil {
		response.WithUnhealthy(w)

		return
	}

	if err := handler.db.Read.PingContext(r.Context()); err != nil {
		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "ok")
}
