package di

import (
	"github.com/polkiloo/receipts/internal/app"
	"github.com/polkiloo/receipts/internal/config"
	"github.com/polkiloo/receipts/internal/logger"
	"github.com/polkiloo/receipts/internal/pkg/auth"
	"github.com/polkiloo/receipts/internal/server/http/handlers"
	"github.com/polkiloo/receipts/internal/server/http/router"
	"github.com/polkiloo/receipts/internal/storage/postgres"
	"github.com/polkiloo/receipts/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.CheckoutFacade) handlers.CheckoutFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
