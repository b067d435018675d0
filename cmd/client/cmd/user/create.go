package user

import (
	"fmt"

	"github.com/spf13/cobra"

	"usercrud/internal/domain/user"
)

var createFields personFlags

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать запись",
	Example: `  usercrud user create --name "Ann Lee" --email ann@example.com \
    --phone 555-0101 --job Architect --company Acme --address "5 Elm st." --birthdate 1985-10-03`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _, err := newApp()
		if err != nil {
			return err
		}

		var p user.Person
		if err := createFields.apply(cmd, &p); err != nil {
			return err
		}

		app.AddClicked()
		if err := app.FormSubmitted(cmd.Context(), p, ""); err != nil {
			return fmt.Errorf("ошибка создания записи: %w", err)
		}

		return nil
	},
}

func init() {
	createFields.register(CreateCmd)
}
