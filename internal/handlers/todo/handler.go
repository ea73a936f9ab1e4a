package todo

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"worktrack/infras/otel"
	"worktrack/internal/domains/todo/model/dto"
	"worktrack/internal/domains/todo/service"
	"worktrack/shared/constant"
	"worktrack/shared/failure"
	"worktrack/shared/validator"
	"worktrack/transport/http/response"
)

type Handler struct {
	service service.Todo
	otel    otel.Otel
}

func New(service service.Todo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTodos)
		routerGroup.Post("/", handler.CreateTodo)
		routerGroup.Put("/{id}", handler.UpdateTodo)
		routerGroup.Patch("/{id}", handler.PatchTodo)
		routerGroup.Delete("/{id}", handler.DeleteTodo)
	})
}

// GetTodos returns every todo record, unfiltered and unpaginated, in
// store-native order, wrapped in the {data} envelope.
func (handler *Handler) GetTodos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodos")
	defer scope.End()

	todos, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get todos")

		response.WithError(w, failure.InternalError(err))

		return
	}

	response.WithData(w, http.StatusOK, todos)
}

// CreateTodo accepts {text, done?, date, endDate}, rejects malformed
// payloads and unparsable dates with 400, and answers 201 with the created
// record (including its assigned id) in the {todo} envelope.
func (handler *Handler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTodo")
	defer scope.End()

	req := dto.CreateTodoRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	todo, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo created successfully")

	response.WithCreated(w, http.StatusCreated, todo)
}

// UpdateTodo is the full-update entry point. It shares one field-merge
// routine with PatchTodo; both accept partial field sets and differ only in
// the caller's intent.
func (handler *Handler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTodo")
	defer scope.End()

	handler.update(ctx, w, r, scope)
}

// PatchTodo is the partial-update entry point.
func (handler *Handler) PatchTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PatchTodo")
	defer scope.End()

	handler.update(ctx, w, r, scope)
}

// DeleteTodo removes the record, answering 404 when no row matched and a
// bare {success:true} acknowledgment when one did.
func (handler *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTodo")
	defer scope.End()

	id, err := handler.pathID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo deleted successfully")

	response.WithAck(w, http.StatusOK, "Todo deleted")
}

func (handler *Handler) update(ctx context.Context, w http.ResponseWriter, r *http.Request, scope otel.Scope) {
	id, err := handler.pathID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.UpdateTodoRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	todo, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo updated successfully")

	response.WithResult(w, http.StatusOK, todo)
}

// pathID parses the {id} path segment; non-numeric ids are a client error,
// never coerced.
func (handler *Handler) pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, constant.RequestParamID)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, failure.BadRequestFromString("id must be a decimal integer") //nolint:wrapcheck
	}

	return id, nil
}
