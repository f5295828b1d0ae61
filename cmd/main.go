package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	embedded "github.com/goserg/ratingcalc"
	"github.com/goserg/ratingcalc/internal/config"
	"github.com/goserg/ratingcalc/internal/logger"
	"github.com/goserg/ratingcalc/internal/service"
	"github.com/goserg/ratingcalc/internal/web"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to server config; the embedded default is used when empty")
	flag.Parse()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.LogLevel, os.Stdout)

	calc, err := cfg.Calculator.Build()
	if err != nil {
		return err
	}
	k, ok := calc.DefaultKFactorLookup()
	log.WithFields(logrus.Fields{
		"min":       calc.Min(),
		"max":       calc.Max(),
		"k":         k,
		"k_defined": ok,
	}).Info("calculator configured")

	server := web.New(service.New(calc, log), cfg.Server, log)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		log.Info("shutting down")
		if err := server.Shutdown(); err != nil {
			log.WithError(err).Error("shutdown")
		}
	}()

	log.WithField("port", cfg.Server.Port).Info("server starting")
	return server.Serve()
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Parse(embedded.DefaultConfig)
	}
	return config.New(path)
}
