package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath = ".env"

	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DefaultAPIBaseURL     = "https://jsonplaceholder.typicode.com"
	defaultRunAddress     = ":3000"
	defaultLogLevel       = "info"
	defaultHomePostsLimit = 5
	defaultPostsPageLimit = 10
)

var (
	ErrEmptyBaseURL   = errors.New("api_base_url не может быть пустым")
	ErrInvalidBaseURL = errors.New("api_base_url должен быть абсолютным URL")
	ErrInvalidLimit   = errors.New("лимит постов не может быть отрицательным")
)

type Config struct {
	Env    string
	API    api
	Server server
	Logger logger
	Posts  posts
}

type api struct {
	BaseURL string `mapstructure:"api_base_url"`
}

type server struct {
	RunAddress string `mapstructure:"run_address"`
}

type logger struct {
	LogLevel string `mapstructure:"log_level"`
}

// posts хранит лимиты для страниц, а не значение по умолчанию для аксессора
type posts struct {
	HomeLimit int `mapstructure:"home_posts_limit"`
	PageLimit int `mapstructure:"posts_page_limit"`
}

// MustLoad загружает конфигурацию и паникует при ошибке
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

// Load читает .env (если есть) и переменные окружения. Базовый URL API
// читается один раз, дальше передается явно через конструкторы.
func Load() (*Config, error) {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			log.Printf("Ошибка загрузки .env файла: %v", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", EnvLocal)
	viper.SetDefault("API_BASE_URL", DefaultAPIBaseURL)
	viper.SetDefault("RUN_ADDRESS", defaultRunAddress)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("HOME_POSTS_LIMIT", defaultHomePostsLimit)
	viper.SetDefault("POSTS_PAGE_LIMIT", defaultPostsPageLimit)

	cfg := &Config{
		Env:    viper.GetString("APP_ENV"),
		API:    api{BaseURL: viper.GetString("API_BASE_URL")},
		Server: server{RunAddress: viper.GetString("RUN_ADDRESS")},
		Logger: logger{LogLevel: viper.GetString("LOG_LEVEL")},
		Posts: posts{
			HomeLimit: viper.GetInt("HOME_POSTS_LIMIT"),
			PageLimit: viper.GetInt("POSTS_PAGE_LIMIT"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// OverrideBaseURL подменяет адрес API (например, флагом CLI) и заново
// проверяет конфигурацию
func (c *Config) OverrideBaseURL(raw string) error {
	c.API.BaseURL = raw
	return c.validate()
}

func (c *Config) validate() error {
	if c.API.BaseURL == "" {
		return ErrEmptyBaseURL
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.API.BaseURL)
	}
	if c.Posts.HomeLimit < 0 || c.Posts.PageLimit < 0 {
		return ErrInvalidLimit
	}
	return nil
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

// IsDev проверяет, dev ли окружение
func (c *Config) IsDev() bool {
	return c.Env == EnvDev
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal || c.Env == ""
}
