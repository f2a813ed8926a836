//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/navsim/internal/app"
	"github.com/zeusync/navsim/internal/config"
	"github.com/zeusync/navsim/internal/core/observability/log"
)

func InitializeApp(cfg config.Config) (*app.App, func(), error) {
	wire.Build(
		ProvideLogger,
		wire.Bind(new(log.Log), new(*log.Logger)),
		app.New,
	)
	return nil, nil, nil
}
