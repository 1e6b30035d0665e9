package main

import (
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/hamed0406/sitehealth/internal/config"
	"github.com/hamed0406/sitehealth/internal/health"
	"github.com/hamed0406/sitehealth/internal/httpapi"
	apimw "github.com/hamed0406/sitehealth/internal/httpapi/middleware"
	"github.com/hamed0406/sitehealth/internal/logging"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	checker := health.NewHTTPChecker()
	defer checker.Close()

	defaults := health.Options{
		Timeout:         cfg.CheckTimeout,
		FollowRedirects: cfg.FollowRedirects,
		Concurrency:     cfg.Concurrency,
	}
	api := httpapi.NewServer(logger, checker, defaults)

	keys := apimw.Keys{
		Public: cfg.PublicAPIKeys,
		Admin:  cfg.AdminAPIKeys,
	}

	logger.Info("api_listen", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, api.Router(keys, cfg.AllowedOrigins, cfg.RateLimitPerMin, cfg.RateLimitBurst)); err != nil {
		log.Fatal(err)
	}
}
