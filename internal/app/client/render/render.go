// Package render превращает снимок состояния просмотра в строки таблицы и
// строку статуса. Чистые функции без состояния.
package render

import (
	"fmt"
	"time"

	"usercrud/internal/app/client/view"
	"usercrud/internal/domain/user"
)

// Row - строка таблицы. Возраст и пенсионный статус вычисляются при каждом рендере.
type Row struct {
	ID          user.ID
	Name        string
	Address     string
	Email       string
	PhoneNumber string
	Job         string
	Company     string
	Birthdate   string
	Age         int
	Retired     bool
}

// Page - готовая к выводу страница таблицы
type Page struct {
	Rows    []Row
	Status  string
	Current int
	Total   int
	Search  string
}

// Render строит страницу из снимка состояния на момент now
func Render(snap view.Snapshot, now time.Time) Page {
	rows := make([]Row, 0, len(snap.Visible))
	for _, u := range snap.Visible {
		rows = append(rows, NewRow(u, now))
	}

	return Page{
		Rows:    rows,
		Status:  Status(snap.Page, snap.TotalPages),
		Current: snap.Page,
		Total:   snap.TotalPages,
		Search:  snap.Search,
	}
}

// NewRow строит строку таблицы для одной записи
func NewRow(u user.User, now time.Time) Row {
	return Row{
		ID:          u.ID,
		Name:        u.Name,
		Address:     u.Address,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Job:         u.Job,
		Company:     u.Company,
		Birthdate:   u.Birthdate.String(),
		Age:         u.Age(now),
		Retired:     u.IsRetired(now),
	}
}

// Status возвращает "Page X of Y"
func Status(current, total int) string {
	return fmt.Sprintf("Page %d of %d", current, total)
}

// RetiredLabel - текст колонки пенсионного статуса
func (r Row) RetiredLabel() string {
	if r.Retired {
		return "Yes"
	}
	return "No"
}
