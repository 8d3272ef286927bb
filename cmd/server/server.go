package server

import (
	"campaign-manager/config"
	"campaign-manager/internal/global/cache"
	"campaign-manager/internal/global/database"
	"campaign-manager/internal/global/httpclient"
	"campaign-manager/internal/global/logger"
	"campaign-manager/internal/global/media"
	"campaign-manager/internal/global/middleware"
	"campaign-manager/internal/global/sentry"
	"campaign-manager/internal/module"
	"campaign-manager/tools"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	config.Init()
	log = logger.New("Server")

	if err := sentry.Init(); err != nil {
		log.Error("Failed to init Sentry", "error", err)
	}

	database.Init()
	cache.Init()
	media.Init()
	httpclient.Init()

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

func Run() {
	gin.SetMode(string(config.Get().Mode))
	r := gin.New()

	switch config.Get().Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(middleware.Cors())
	r.Use(sentry.Middleware())
	r.Use(middleware.SentryEnrichIP())
	r.Use(middleware.Recovery())

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + config.Get().Prefix))
	}

	defer sentry.Flush(2 * time.Second)

	err := r.Run(config.Get().Host + ":" + config.Get().Port)
	tools.PanicOnErr(err)
}
