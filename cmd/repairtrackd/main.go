package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/workshoplabs/repairtrack/config"
	"github.com/workshoplabs/repairtrack/internal/app"
	"github.com/workshoplabs/repairtrack/internal/rpcapi"
	"github.com/workshoplabs/repairtrack/internal/webserver"
	"github.com/workshoplabs/repairtrack/internal/workshop"
	"go.uber.org/zap"
)

var (
	confFile = flag.String("c", "repairtrack.yml", "config file")
	initDB   = flag.Bool("initdb", false, "drop and recreate the database schema, then exit")
	showVer  = flag.Bool("v", false, "print version and exit")
)

var Version = "dev"

func main() {
	flag.Parse()

	if *showVer {
		fmt.Println("repairtrackd", Version)
		return
	}

	_ = godotenv.Load()
	cfg := config.LoadConfig(*confFile)

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initDB {
		application.InitDb()
		zap.S().Info("database initialized")
		return
	}

	webserver.Init(cfg)
	rpcapi.InitRouter(workshop.NewWorkshopService(application.DB()))

	errChan := make(chan error, 1)
	go func() {
		errChan <- webserver.Listen()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		zap.S().Errorf("web server stopped: %v", err)
		os.Exit(1)
	case sig := <-sigChan:
		zap.S().Infof("received signal %s, shutting down", sig)
		_ = webserver.Shutdown()
	}
}
