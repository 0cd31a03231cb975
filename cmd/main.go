package main

import "github.com/adanyl0v/quicktask-analytics/internal/app"

func main() {
	logger := app.InitDefaultLogger()
	cfg := app.MustReadEnv(logger)
	logger = app.MustInitApplicationLogger(logger, cfg)

	store, disconnect := app.MustConnectTaskStore(logger, cfg)
	defer disconnect()

	app.MustListenAndServeHTTP(logger, cfg, store)
}
