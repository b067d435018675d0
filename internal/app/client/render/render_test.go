package render

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"usercrud/internal/app/client/view"
	"usercrud/internal/domain/user"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var now = time.Date(2024, time.June, 14, 10, 0, 0, 0, time.UTC)

func TestRender_PaginationWalk(t *testing.T) {
	users := make([]user.User, 0, 25)
	for i := 1; i <= 25; i++ {
		users = append(users, user.User{
			ID:     user.IntID(int64(i)),
			Person: user.Person{Name: fmt.Sprintf("User %d", i), Birthdate: user.NewDate(2000, time.June, 15)},
		})
	}

	s := view.New()
	s.Replace(users)

	page := Render(s.Snapshot(), now)
	assert.Equal(t, "Page 1 of 3", page.Status)
	assert.Len(t, page.Rows, 10)

	s.Next()
	page = Render(s.Snapshot(), now)
	assert.Equal(t, "Page 2 of 3", page.Status)
	assert.Len(t, page.Rows, 10)

	s.Next()
	page = Render(s.Snapshot(), now)
	assert.Equal(t, "Page 3 of 3", page.Status)
	assert.Len(t, page.Rows, 5)

	s.Next()
	page = Render(s.Snapshot(), now)
	assert.Equal(t, "Page 3 of 3", page.Status)
}

func TestRender_Empty(t *testing.T) {
	page := Render(view.New().Snapshot(), now)

	assert.Empty(t, page.Rows)
	assert.Equal(t, "Page 1 of 0", page.Status)
}

func TestNewRow(t *testing.T) {
	tests := []struct {
		name      string
		birthdate user.Date
		age       int
		retired   bool
		label     string
	}{
		{name: "day before birthday", birthdate: user.NewDate(2000, time.June, 15), age: 23, label: "No"},
		{name: "birthday passed", birthdate: user.NewDate(2000, time.June, 13), age: 24, label: "No"},
		{name: "exactly 65", birthdate: user.NewDate(1959, time.June, 14), age: 65, label: "No"},
		{name: "66", birthdate: user.NewDate(1958, time.June, 14), age: 66, retired: true, label: "Yes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := NewRow(user.User{
				ID: "7",
				Person: user.Person{
					Name:        "Ann",
					Email:       "ann@example.com",
					PhoneNumber: "555",
					Birthdate:   tt.birthdate,
				},
			}, now)

			assert.Equal(t, user.ID("7"), row.ID)
			assert.Equal(t, tt.age, row.Age)
			assert.Equal(t, tt.retired, row.Retired)
			assert.Equal(t, tt.label, row.RetiredLabel())
			assert.Equal(t, tt.birthdate.String(), row.Birthdate)
		})
	}
}

func TestRender_CarriesSearch(t *testing.T) {
	s := view.New()
	s.Replace([]user.User{{ID: "1", Person: user.Person{Name: "Ann"}}})
	s.SetSearch("an")

	page := Render(s.Snapshot(), now)
	require.Len(t, page.Rows, 1)
	assert.Equal(t, "an", page.Search)
	assert.Equal(t, 1, page.Current)
	assert.Equal(t, 1, page.Total)
}
