// cmd/server/cmd/root.go
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "usercrud-server",
	Short: "usercrud-server - REST-хранилище записей пользователей",
	Long: `usercrud-server обслуживает JSON API записей пользователей
(GET/POST /api/users, GET/PUT/DELETE /api/users/{id}).

Хранилище выбирается через STORAGE_DRIVER: memory, sqlite или postgres.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(hashTokenCmd)
}
