package main

import (
	"context"
	"flag"
	"log"

	"github.com/ory/graceful"

	"github.com/xelaorg/xela-status/cmd/dashboard/controller"
	"github.com/xelaorg/xela-status/pkg/utils"
	"github.com/xelaorg/xela-status/service/singleton"
)

func main() {
	configPath := flag.String("c", "data/config.yaml", "config file path")
	flag.Parse()
	if !utils.IsFileExists(*configPath) {
		log.Fatalf("XELA> config file %s does not exist", *configPath)
	}

	singleton.Init()
	singleton.InitConfigFromPath(*configPath)
	singleton.InitDBFromPath(singleton.Conf.DatabaseLocation)
	singleton.LoadSingleton()

	srv := graceful.WithDefaults(controller.ServeWeb(singleton.Conf.Listen))
	log.Printf("XELA> dashboard (%s) listening on %s", singleton.Version, singleton.Conf.Listen)
	if err := graceful.Graceful(srv.ListenAndServe, func(ctx context.Context) error {
		singleton.StopRefresher()
		return srv.Shutdown(ctx)
	}); err != nil {
		log.Printf("XELA> graceful shutdown failed: %v", err)
	}
}
