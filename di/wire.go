//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"worktrack/config"
	"worktrack/infras/otel"
	"worktrack/infras/postgres"
	"worktrack/infras/redis"
	todoRepository "worktrack/internal/domains/todo/repository"
	todoService "worktrack/internal/domains/todo/service"
	healthHandler "worktrack/internal/handlers/health"
	todoHandler "worktrack/internal/handlers/todo"
	"worktrack/shared/cache"
	"worktrack/transport/http"
	"worktrack/transport/http/middleware"
	"worktrack/transport/http/router"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	todoHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		todoDomain,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
