package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bestconstruction/internal/config"
	"github.com/bestconstruction/internal/db"
	"github.com/bestconstruction/internal/handler"
	"github.com/bestconstruction/internal/revalidate"
	"github.com/bestconstruction/internal/router"
)

func main() {
	// .env 仅用于本地开发，缺失时忽略
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	setupLogger(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	routes := &revalidate.Notifier{}
	api := handler.NewAPI(db.DB, routes, cfg.UploadDir, cfg.UploadURLPath)

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(cfg, api)
	log.Info().Str("addr", cfg.ListenAddr).Msg("server listening")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("failed to run server")
	}
}

func setupLogger(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
