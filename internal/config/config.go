// Package config предоставляет структуры и функцию для загрузки
// конфигурации из yaml-файла или переменных окружения.
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек.
type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	Mongo      `yaml:"mongo"`
	JWTToken   `yaml:"jwttoken"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	Port        string        `yaml:"port" env:"PORT" env-default:"8000"`
	TimeoutHTTP time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// Mongo структура для настройки подключения к MongoDB.
type Mongo struct {
	DatabaseURL  string `yaml:"database_url" env:"DATABASE_URL" env-default:"mongodb://localhost:27017"`
	DatabaseName string `yaml:"database_name" env:"DATABASE_NAME" env-default:"trading_store"`
}

// JWTToken структура для работы с jwt-токеном.
//
// Секретный ключ обязателен: небезопасного значения по умолчанию нет,
// без SECRET_KEY процесс не стартует.
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"SECRET_KEY"`
	TokenTTL     time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"24h"`
}

// Addr возвращает адрес прослушивания HTTP-сервера.
func (h HTTPServer) Addr() string {
	return ":" + h.Port
}

// MustLoad загружает конфиг из файла по пути CONFIG_PATH, а если путь
// не задан — из переменных окружения. Завершает процесс при ошибке
// чтения или отсутствии секретного ключа.
func MustLoad() *Config {
	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			log.Fatalf("file: %s - does not exist", configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			log.Fatalf("cannot read config: %s", err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from env: %s", err)
		}
	}

	if cfg.JWTSecretKey == "" {
		log.Fatal("SECRET_KEY is not set")
	}
	return &cfg
}
