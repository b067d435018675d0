package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath = ".env"

	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	defaultRunAddress = ":8080"
	defaultMigrations = "migrations"
	defaultSQLitePath = "usercrud.db"
)

type Config struct {
	Env     string
	DB      DB
	Storage Storage
	Server  Server
	Auth    Auth
	Logger  Logger
}

type DB struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type Storage struct {
	Driver     string `env:"STORAGE_DRIVER" envDefault:"memory"`
	SQLitePath string `env:"SQLITE_PATH"`
}

type Server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

// Auth - если TokenHash пуст, API открыт без авторизации
type Auth struct {
	TokenHash string `env:"STORE_TOKEN_HASH"`
}

type Logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// MustLoad загружает конфигурацию сервера и паникует при ошибке валидации
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			log.Printf("Ошибка загрузки .env файла: %v", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", EnvLocal)
	viper.SetDefault("RUN_ADDRESS", defaultRunAddress)
	viper.SetDefault("STORAGE_DRIVER", DriverMemory)
	viper.SetDefault("MIGRATIONS_PATH", defaultMigrations)
	viper.SetDefault("SQLITE_PATH", defaultSQLitePath)
	viper.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Env: viper.GetString("APP_ENV"),
		DB: DB{
			DatabaseURI: viper.GetString("DATABASE_URI"),
			Migrations:  viper.GetString("MIGRATIONS_PATH"),
		},
		Storage: Storage{
			Driver:     viper.GetString("STORAGE_DRIVER"),
			SQLitePath: viper.GetString("SQLITE_PATH"),
		},
		Server: Server{RunAddress: viper.GetString("RUN_ADDRESS")},
		Auth:   Auth{TokenHash: viper.GetString("STORE_TOKEN_HASH")},
		Logger: Logger{LogLevel: viper.GetString("LOG_LEVEL")},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.RunAddress == "" {
		return fmt.Errorf("run_address не может быть пустым")
	}

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverSQLite:
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("sqlite_path не может быть пустым")
		}
	case DriverPostgres:
		if c.DB.DatabaseURI == "" {
			return fmt.Errorf("database_uri обязателен для драйвера %s", DriverPostgres)
		}
	default:
		return fmt.Errorf("неизвестный драйвер хранилища: %s", c.Storage.Driver)
	}

	return nil
}
