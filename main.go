package main

import (
	"flag"

	"coursehub/global"
	"coursehub/initialize"
	"coursehub/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to YAML config file")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("startup failed")
	}

	addr := app.Cfg.Server
	global.Logger.Info().Str("host", addr.Host).Int("port", addr.Port).Msg("listening")
	if err := server.StartHTTPServer(addr.Host, addr.Port, app.Router); err != nil {
		global.Logger.Fatal().Err(err).Msg("http server stopped")
	}
}
