package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"usercrud/internal/app/client"
	"usercrud/internal/domain/user"
)

const (
	fieldName = iota
	fieldAddress
	fieldEmail
	fieldPhone
	fieldJob
	fieldCompany
	fieldBirthdate
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Name", "Address", "Email", "Phone number", "Job", "Company", "Birthdate",
}

// form - диалог добавления/редактирования записи
type form struct {
	mode   client.DialogMode
	id     user.ID
	inputs [fieldCount]textinput.Model
	focus  int
}

func newForm(mode client.DialogMode, u *user.User) *form {
	f := &form{mode: mode}

	for i := range f.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 128
		in.Width = 40
		f.inputs[i] = in
	}
	f.inputs[fieldBirthdate].Placeholder = "YYYY-MM-DD"
	f.inputs[fieldBirthdate].CharLimit = 10

	if u != nil {
		f.id = u.ID
		f.inputs[fieldName].SetValue(u.Name)
		f.inputs[fieldAddress].SetValue(u.Address)
		f.inputs[fieldEmail].SetValue(u.Email)
		f.inputs[fieldPhone].SetValue(u.PhoneNumber)
		f.inputs[fieldJob].SetValue(u.Job)
		f.inputs[fieldCompany].SetValue(u.Company)
		f.inputs[fieldBirthdate].SetValue(u.Birthdate.String())
	}

	f.inputs[0].Focus()
	return f
}

func (f *form) title() string {
	if f.mode == client.DialogEdit {
		return "Edit user"
	}
	return "Add user"
}

// move переводит фокус на соседнее поле по кругу
func (f *form) move(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	return f.inputs[f.focus].Focus()
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// person собирает запись из полей без проверки форматов
func (f *form) person() user.Person {
	birthdate, _ := user.ParseDate(strings.TrimSpace(f.inputs[fieldBirthdate].Value()))

	return user.Person{
		Name:        f.inputs[fieldName].Value(),
		Address:     f.inputs[fieldAddress].Value(),
		Email:       f.inputs[fieldEmail].Value(),
		PhoneNumber: f.inputs[fieldPhone].Value(),
		Job:         f.inputs[fieldJob].Value(),
		Company:     f.inputs[fieldCompany].Value(),
		Birthdate:   birthdate,
	}
}
