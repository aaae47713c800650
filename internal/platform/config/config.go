package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort   = "8080"
	DefaultSource = "animals.json"
)

// Config agrupa la configuración del proceso.
// Precedencia: defaults < archivo YAML (CONFIG_FILE) < variables de entorno (.env incluido).
type Config struct {
	Port        string `yaml:"port"`
	Source      string `yaml:"source"`
	DBDSN       string `yaml:"db_dsn"`
	WatchSource bool   `yaml:"watch_source"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	AppName   string `yaml:"app_name"`
}

func Default() Config {
	return Config{
		Port:    DefaultPort,
		Source:  DefaultSource,
		AppName: "animalbase",
	}
}

// Load lee .env (si existe), luego CONFIG_FILE (si está seteado) y por último env vars.
func Load() (Config, error) {
	// .env es opcional; solo fallamos si existe y está mal formado.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}

	cfg := Default()

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg.applyEnv(os.Getenv)
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(b, &fileCfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	if v := strings.TrimSpace(fileCfg.Port); v != "" {
		c.Port = v
	}
	if v := strings.TrimSpace(fileCfg.Source); v != "" {
		c.Source = v
	}
	if v := strings.TrimSpace(fileCfg.DBDSN); v != "" {
		c.DBDSN = v
	}
	if fileCfg.WatchSource {
		c.WatchSource = true
	}
	if v := strings.TrimSpace(fileCfg.LogLevel); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(fileCfg.LogFormat); v != "" {
		c.LogFormat = v
	}
	if v := strings.TrimSpace(fileCfg.AppName); v != "" {
		c.AppName = v
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv("PORT")); v != "" {
		c.Port = v
	}
	if v := strings.TrimSpace(getenv("ANIMALS_SOURCE")); v != "" {
		c.Source = v
	}
	if v := strings.TrimSpace(getenv("DB_DSN")); v != "" {
		c.DBDSN = v
	}
	if v := strings.TrimSpace(getenv("WATCH_SOURCE")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.WatchSource = b
		}
	}
	if v := strings.TrimSpace(getenv("LOG_LEVEL")); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(getenv("LOG_FORMAT")); v != "" {
		c.LogFormat = v
	}
	if v := strings.TrimSpace(getenv("APP_NAME")); v != "" {
		c.AppName = v
	}
}

// Addr devuelve ":<port>" para http.Server.
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}
