// Package config loads runtime settings from environment variables.
package config

import "github.com/caarlos0/env/v11"

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr    string `env:"LISTEN_ADDR" envDefault:":8080"`
	DatabasePath  string `env:"DATABASE_PATH" envDefault:"bestconstruction.db"`
	SessionSecret string `env:"SESSION_SECRET" envDefault:"bestconstruction-dev-secret"`
	GinMode       string `env:"GIN_MODE" envDefault:"release"`
	UploadDir     string `env:"UPLOAD_DIR" envDefault:"web/static/uploads"`
	UploadURLPath string `env:"UPLOAD_URL_PATH" envDefault:"/static/uploads"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() (AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}
