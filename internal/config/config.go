package config

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string           `yaml:"env" env-default:"development"` // environment
	HTTPServer HTTPServerConfig `yaml:"http_server"`
	Database   DatabaseConfig   `yaml:"database"`
	JWT        JWTConfig        `yaml:"jwt"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	Migrations MigrationsConfig `yaml:"migrations"`
}

// HTTPServerConfig holds the http server settings
type HTTPServerConfig struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// DatabaseConfig holds the catalog database settings
type DatabaseConfig struct {
	Host     string `yaml:"host" env-default:"localhost"`
	Port     int    `yaml:"port" env-default:"5432"`
	User     string `yaml:"user" env-required:"true"`
	Password string `yaml:"-" env:"DB_PASSWORD" env-required:"true"`
	Name     string `yaml:"name" env-required:"true"`
}

// JWTConfig holds the token settings, secret comes from env only.
// Not required at load time: the migrator shares this config and does
// not issue tokens, the server checks the secret on startup.
type JWTConfig struct {
	Secret   string `yaml:"-" env:"JWT_SECRET"`
	TokenTTL int    `yaml:"token_ttl" env-default:"60"`
}

// GeminiConfig holds the generative-design collaborator settings,
// the API key comes from env only. Same deal as the JWT secret: only
// the server needs it, so it is checked on startup, not on load.
type GeminiConfig struct {
	APIKey       string        `yaml:"-" env:"GEMINI_API_KEY"`
	BaseURL      string        `yaml:"base_url" env-default:"https://generativelanguage.googleapis.com"`
	SuggestModel string        `yaml:"suggest_model" env-default:"gemini-2.5-pro"`
	ImageModel   string        `yaml:"image_model" env-default:"gemini-2.5-flash-image"`
	Timeout      time.Duration `yaml:"timeout" env-default:"30s"`
}

type MigrationsConfig struct {
	Path string `yaml:"path" env-default:"./migrations"`
}

// MustLoad panics when the config cannot be loaded
func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		log.Fatal("CONFIG_PATH not exists")
	}
	return MustLoadByPath(configPath)
}

func fetchConfigPath() string {
	var path string

	flag.StringVar(&path, "config", "", "path to config file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	return path
}

func MustLoadByPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file not found: " + configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("can't read config file %s", configPath)
	}

	return &cfg
}
