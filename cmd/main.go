package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hookbot/config"
	"hookbot/core"
	"hookbot/pkg/types"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

func main() {
	configureLog(config.Env.EnvName)

	cfg, err := config.LoadConfig(config.Env.EnvName)
	if err != nil {
		log.Fatalf("fail to load config: %v", err)
	}

	// 📊 core: dispatcher module
	dispatcher, err := core.Bootstrap(*cfg)
	if err != nil {
		log.Panicf("fail to bootstrap app: %v", err)
	}

	// 🌩️ fiber: webhook API module
	app := core.SetupFiberApp(dispatcher)
	setupSignalHandler(app)

	if err := app.Listen(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Panic(err)
	}
}

func configureLog(envName types.EnvName) {
	log.SetLevel(log.InfoLevel)
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if envName == types.EnvLocal || envName == types.EnvDev {
		log.SetLevel(log.DebugLevel)
	}
}

func setupSignalHandler(app *fiber.App) {
	sigC := make(chan os.Signal, 1)
	signal.Notify(sigC, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigC
		log.Info("🚩 received shutdown signal")
		core.ShutdownFiberApp(app)
	}()
}
