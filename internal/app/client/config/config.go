package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultStoreURL       = "http://localhost:8080/api/users"
	defaultWebAddress     = "localhost:3000"
	defaultLogLevel       = "info"
	defaultEnv            = "local"
	defaultRequestTimeout = 30
)

type Config struct {
	Env            string `mapstructure:"app_env"`
	StoreURL       string `mapstructure:"store_url"`
	StoreToken     string `mapstructure:"store_token"`
	LogLevel       string `mapstructure:"log_level"`
	WebAddress     string `mapstructure:"web_address"`
	RequestTimeout int    `mapstructure:"request_timeout_seconds"`
}

// MustLoad загружает конфигурацию клиента и паникует при ошибке валидации
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

// Load читает .env (если есть), конфиг-файл viper и переменные окружения
func Load() (*Config, error) {
	// Определяем путь к .env файлу (относительно места запуска)
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}

	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Ошибка загрузки .env файла: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("STORE_URL", defaultStoreURL)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("WEB_ADDRESS", defaultWebAddress)
	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", defaultRequestTimeout)

	config := &Config{
		Env:            viper.GetString("APP_ENV"),
		StoreURL:       viper.GetString("STORE_URL"),
		StoreToken:     viper.GetString("STORE_TOKEN"),
		LogLevel:       viper.GetString("LOG_LEVEL"),
		WebAddress:     viper.GetString("WEB_ADDRESS"),
		RequestTimeout: viper.GetInt("REQUEST_TIMEOUT_SECONDS"),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.StoreURL == "" {
		return fmt.Errorf("store_url не может быть пустым")
	}
	u, err := url.Parse(c.StoreURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("store_url должен быть абсолютным URL: %q", c.StoreURL)
	}
	if c.WebAddress == "" {
		return fmt.Errorf("web_address не может быть пустым")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout_seconds должен быть положительным")
	}
	return nil
}

// Timeout возвращает таймаут HTTP-запросов к хранилищу
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// IsDev проверяет, dev ли окружение
func (c *Config) IsDev() bool {
	return c.Env == "dev"
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}
