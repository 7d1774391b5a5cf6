package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/reactorml/reactorserve/internal/config"
	"github.com/reactorml/reactorserve/internal/onnx"
	"github.com/reactorml/reactorserve/internal/server/http"
	"github.com/reactorml/reactorserve/pkg/logger"
	"github.com/reactorml/reactorserve/pkg/metric"
)

func main() {
	appConfig := config.GetAppConfig()
	config.InitConfig(appConfig)
	logger.Init()
	metric.Init()

	// The model is loaded exactly once; a missing or corrupt artifact is
	// fatal rather than serving a half-initialized session.
	session, err := onnx.Load(appConfig.Configs.ModelOnnxPath, appConfig.Configs.OnnxRuntimeSharedLib)
	if err != nil {
		log.Panic().Err(err).Msgf("Failed to load ONNX model from %s", appConfig.Configs.ModelOnnxPath)
	}
	defer session.Close()

	http.Init(appConfig.Configs, session)
	log.Info().Msgf("Starting reactorserve http server on port :%d", appConfig.Configs.AppPort)
	if err := http.Instance().Run(fmt.Sprintf(":%d", appConfig.Configs.AppPort)); err != nil {
		log.Panic().Err(err).Msg("Error running reactorserve http server")
	}
}
