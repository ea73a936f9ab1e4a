package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names Todo=MockTodoService

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"worktrack/config"
	"worktrack/infras/otel"
	"worktrack/internal/domains/todo/model"
	"worktrack/internal/domains/todo/model/dto"
	"worktrack/internal/domains/todo/repository"
	"worktrack/shared"
	"worktrack/shared/cache"
	"worktrack/shared/constant"
	gDto "worktrack/shared/dto"
	"worktrack/shared/failure"
)

const (
	cacheKeyTodoList = "todos:list"
)

// Todo is the one-store-interaction-per-operation service behind the API
// layer. Concurrent edits to the same record race at last write wins; the
// store's single-row atomicity is the only coordination relied upon.
type Todo interface {
	Create(ctx context.Context, req dto.CreateTodoRequest) (dto.TodoResponse, error)
	List(ctx context.Context) ([]dto.TodoResponse, error)
	Update(ctx context.Context, req dto.UpdateTodoRequest, id int64) (dto.TodoResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo  repository.Todo
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Todo, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Todo {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	todo, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("rejected todo payload")

		return res, err
	}

	id, err := s.repo.Insert(ctx, todo)
	if err != nil {
		log.Error().Err(err).Msg("failed to create todo")

		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	todo.ID = id

	s.invalidateList(ctx)

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context) (res []dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	if s.cfg.Cache.Enable {
		cached := []dto.TodoResponse{}
		if err := s.cache.Get(ctx, cacheKeyTodoList, &cached); err == nil {
			return cached, nil
		} else if !errors.Is(err, cache.Nil) {
			log.Warn().Err(err).Msg("todo list cache read failed, falling through to store")
		}
	}

	// Insertion order: ids are monotonically assigned, so ordering by id
	// preserves the store-native order the board expects.
	models, err := s.repo.GetAll(ctx, gDto.FilterGroup{}, model.TableName+"."+model.FieldID+" "+constant.FieldSortDirAsc)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return res, fmt.Errorf("failed to get todos: %w", err)
	}

	res = dto.TodoListFromModels(models)

	if s.cfg.Cache.Enable {
		if err := s.cache.Save(ctx, cacheKeyTodoList, res, s.cfg.Cache.TTL); err != nil {
			log.Warn().Err(err).Msg("failed to cache todo list")
		}
	}

	return res, nil
}

// Update is the single field-merge routine behind both the full-update and
// partial-update verbs. Only fields present in the payload are applied; an
// empty effective field set is a no-op that returns the record unchanged.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTodoRequest, id int64) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	fields, err := req.Fields()
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("rejected todo update payload")

		return res, err
	}

	if len(fields) > 0 {
		affected, err := s.repo.Update(ctx, fields, filter)
		if err != nil {
			log.Error().Err(err).Int64("id", id).Msg("failed to update todo")

			return res, fmt.Errorf("failed to update todo: %w", err)
		}

		if affected == 0 {
			return res, failure.NotFound(model.EntityName) //nolint:wrapcheck
		}

		s.invalidateList(ctx)
	}

	todo, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get updated todo")

		return res, fmt.Errorf("failed to get updated todo: %w", err)
	}

	if todo.ID == 0 {
		return res, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	affected, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete todo")

		return fmt.Errorf("failed to delete todo: %w", err)
	}

	if affected == 0 {
		return failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	s.invalidateList(ctx)

	return nil
}

// invalidateList drops the cached collection after any mutation, forcing
// the next read through to the store. Cache trouble is logged, never fatal.
func (s *serviceImpl) invalidateList(ctx context.Context) {
	if !s.cfg.Cache.Enable {
		return
	}

	if err := s.cache.Delete(ctx, cacheKeyTodoList); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate todo list cache")
	}
}
