package user

import (
	"fmt"

	"github.com/spf13/cobra"

	"usercrud/internal/domain/user"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Удалить запись",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := newApp()
		if err != nil {
			return err
		}

		if err := app.DeleteClicked(cmd.Context(), user.ID(args[0])); err != nil {
			return fmt.Errorf("ошибка удаления записи: %w", err)
		}

		return nil
	},
}
