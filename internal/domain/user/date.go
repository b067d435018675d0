package user

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// DateLayout - формат календарной даты в JSON
const DateLayout = "2006-01-02"

// Date - календарная дата без времени и часового пояса
type Date struct {
	time.Time
}

// NewDate создает дату из года, месяца и дня
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate разбирает YYYY-MM-DD или RFC 3339. Пустая строка дает нулевую дату.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}

	if t, err := time.Parse(DateLayout, s); err == nil {
		return Date{Time: t}, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}

	y, m, d := t.Date()
	return NewDate(y, m, d), nil
}

// String возвращает дату в формате YYYY-MM-DD или пустую строку для нулевой даты
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("birthdate must be a string: %w", err)
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Schema реализует huma.SchemaProvider
func (Date) Schema(_ huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type:        huma.TypeString,
		Format:      "date",
		Description: "Календарная дата",
		Examples:    []any{"2000-06-15"},
	}
}
