package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"usercrud/internal/app/server/api/http/middleware/auth"
)

var hashTokenCmd = &cobra.Command{
	Use:   "hash-token <token>",
	Short: "Получить bcrypt-хэш токена для STORE_TOKEN_HASH",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := auth.HashToken(args[0])
		if err != nil {
			return fmt.Errorf("ошибка хэширования токена: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}
