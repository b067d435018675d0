package user

import (
	"fmt"

	"github.com/spf13/cobra"

	"usercrud/internal/domain/user"
)

var updateFields personFlags

var UpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Обновить запись",
	Long: `Загружает запись, заменяет указанные флагами поля и сохраняет
запись целиком.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, p, err := newApp()
		if err != nil {
			return err
		}

		if err := app.Load(cmd.Context()); err != nil {
			return err
		}

		id := user.ID(args[0])
		if err := app.EditClicked(id); err != nil {
			return err
		}

		person := p.Dialog().Person
		if err := updateFields.apply(cmd, &person); err != nil {
			return err
		}

		if err := app.FormSubmitted(cmd.Context(), person, id); err != nil {
			return fmt.Errorf("ошибка обновления записи: %w", err)
		}

		return nil
	},
}

func init() {
	updateFields.register(UpdateCmd)
}
