package main

import (
	"worktrack/config"
	"worktrack/di"
	"worktrack/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
