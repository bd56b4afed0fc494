package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/factorytrack/internal/app"
	"github.com/polkiloo/factorytrack/internal/config"
	"github.com/polkiloo/factorytrack/internal/logger"
	"github.com/polkiloo/factorytrack/internal/pkg/auth"
	"github.com/polkiloo/factorytrack/internal/server/http/handlers"
	"github.com/polkiloo/factorytrack/internal/server/http/router"
	"github.com/polkiloo/factorytrack/internal/storage/postgres"
	"github.com/polkiloo/factorytrack/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.FactoryFacade) handlers.FactoryFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
