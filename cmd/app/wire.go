//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/datetime/internal/bootstrap"
	"github.com/yanqian/datetime/internal/domain/datetime"
	"github.com/yanqian/datetime/internal/infra/config"
	httpiface "github.com/yanqian/datetime/internal/interface/http"
	"github.com/yanqian/datetime/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		datetime.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
