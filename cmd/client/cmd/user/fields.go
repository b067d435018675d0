package user

import (
	"fmt"

	"github.com/spf13/cobra"

	"usercrud/internal/domain/user"
)

// personFlags - поля записи, общие для create и update
type personFlags struct {
	name        string
	address     string
	email       string
	phoneNumber string
	job         string
	company     string
	birthdate   string
}

func (f *personFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "имя")
	cmd.Flags().StringVar(&f.address, "address", "", "адрес")
	cmd.Flags().StringVar(&f.email, "email", "", "электронная почта")
	cmd.Flags().StringVar(&f.phoneNumber, "phone", "", "телефон")
	cmd.Flags().StringVar(&f.job, "job", "", "должность")
	cmd.Flags().StringVar(&f.company, "company", "", "компания")
	cmd.Flags().StringVar(&f.birthdate, "birthdate", "", "дата рождения (YYYY-MM-DD)")
}

// apply переносит в p только явно указанные флаги
func (f *personFlags) apply(cmd *cobra.Command, p *user.Person) error {
	set := func(flag string, dst *string, v string) {
		if cmd.Flags().Changed(flag) {
			*dst = v
		}
	}

	set("name", &p.Name, f.name)
	set("address", &p.Address, f.address)
	set("email", &p.Email, f.email)
	set("phone", &p.PhoneNumber, f.phoneNumber)
	set("job", &p.Job, f.job)
	set("company", &p.Company, f.company)

	if cmd.Flags().Changed("birthdate") {
		d, err := user.ParseDate(f.birthdate)
		if err != nil {
			return fmt.Errorf("некорректная дата рождения: %w", err)
		}
		p.Birthdate = d
	}

	return nil
}
