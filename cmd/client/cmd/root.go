// cmd/client/cmd/root.go
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"usercrud/cmd/client/cmd/user"
	"usercrud/internal/app/client"
	"usercrud/internal/app/client/config"
	"usercrud/internal/utils/logger"
)

var (
	cfgFile    string
	cfg        *config.Config
	log        *slog.Logger
	store      client.Store
	debug      bool
	jsonOutput bool
	storeURL   string
)

var rootCmd = &cobra.Command{
	Use:   "usercrud",
	Short: "usercrud - клиент удаленного хранилища записей пользователей",
	Long: `usercrud показывает записи удаленного JSON-хранилища в таблице
с поиском и постраничным выводом и позволяет создавать, изменять и
удалять записи.

Интерфейсы: браузерный (web), терминальный (tui) и разовые команды (user).`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if storeURL != "" {
		cfg.StoreURL = storeURL
	}
	if debug {
		cfg.LogLevel = "debug"
	}

	log = logger.NewWithWriter(cfg.Env, cfg.LogLevel, cmd.ErrOrStderr())

	httpCl, err := client.NewHTTPClient(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации HTTP клиента: %w", err)
	}
	store = httpCl

	user.Bind(&user.Deps{
		Store: store,
		Log:   log,
		Out:   cmd.OutOrStdout(),
		JSON:  jsonOutput,
	})

	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		viper.AddConfigPath(filepath.Join(home, ".usercrud"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Конфиг не найден, используем окружение и значения по умолчанию
	}

	return config.Load()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "вывод в формате JSON")
	rootCmd.PersistentFlags().StringVar(&storeURL, "server", "", "URL коллекции хранилища (STORE_URL)")

	rootCmd.AddCommand(user.UserCmd)
	user.UserCmd.AddCommand(user.ListCmd)
	user.UserCmd.AddCommand(user.CreateCmd)
	user.UserCmd.AddCommand(user.UpdateCmd)
	user.UserCmd.AddCommand(user.DeleteCmd)

	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(tuiCmd)
}
