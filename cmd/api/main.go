package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/traffic-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/traffic-dashboard-api/infrastructure/feed/feedclient"
	"github.com/vfg2006/traffic-dashboard-api/internal/api"
	"github.com/vfg2006/traffic-dashboard-api/internal/config"
	"github.com/vfg2006/traffic-dashboard-api/internal/scheduler"
	"github.com/vfg2006/traffic-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/traffic-dashboard-api/internal/usecases/loading"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feedClient := feedclient.NewClient(cfg)
	loader := loading.NewService(cfg, feedClient)
	feedCache := cache.NewFeedCache(loader, cfg.Feed.CacheTTL())

	dashboardService := dashboarding.NewService(cfg, feedCache)

	for _, info := range dashboardService.Variants() {
		if !info.Configured {
			logrus.WithField("variant", info.Variant).Warn("Planilha não configurada, o dashboard responderá com erro")
		}
	}

	feedRefreshService := scheduler.NewFeedRefreshService(dashboardService, cfg)
	if err := feedRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização das planilhas")
	}
	defer feedRefreshService.Stop()

	server, err := api.New(cfg, dashboardService, feedRefreshService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
