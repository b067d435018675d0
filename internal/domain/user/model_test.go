package user

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAge(t *testing.T) {
	tests := []struct {
		name      string
		birthdate Date
		now       time.Time
		expected  int
	}{
		{
			name:      "day before birthday",
			birthdate: NewDate(2000, time.June, 15),
			now:       time.Date(2024, time.June, 14, 12, 0, 0, 0, time.UTC),
			expected:  23,
		},
		{
			name:      "on birthday",
			birthdate: NewDate(2000, time.June, 15),
			now:       time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
			expected:  24,
		},
		{
			name:      "earlier month",
			birthdate: NewDate(2000, time.June, 15),
			now:       time.Date(2024, time.January, 30, 0, 0, 0, 0, time.UTC),
			expected:  23,
		},
		{
			name:      "later month",
			birthdate: NewDate(2000, time.June, 15),
			now:       time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
			expected:  24,
		},
		{
			name:      "leap day birthday in non-leap year",
			birthdate: NewDate(2004, time.February, 29),
			now:       time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC),
			expected:  18,
		},
		{
			name:      "zero birthdate",
			birthdate: Date{},
			now:       time.Now(),
			expected:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Age(tt.birthdate, tt.now))
			assert.Equal(t, tt.expected, Person{Birthdate: tt.birthdate}.Age(tt.now))
		})
	}
}

func TestPerson_IsRetired(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	// 66 полных лет
	assert.True(t, Person{Birthdate: NewDate(1958, time.June, 15)}.IsRetired(now))
	// ровно 65
	assert.False(t, Person{Birthdate: NewDate(1959, time.June, 15)}.IsRetired(now))
	// 66-й день рождения завтра
	assert.False(t, Person{Birthdate: NewDate(1958, time.June, 16)}.IsRetired(now))
}

func TestDate_JSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		data, err := json.Marshal(NewDate(2000, time.June, 15))
		require.NoError(t, err)
		assert.Equal(t, `"2000-06-15"`, string(data))

		data, err = json.Marshal(Date{})
		require.NoError(t, err)
		assert.Equal(t, `""`, string(data))
	})

	t.Run("unmarshal accepts date, timestamp and empty", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"1990-01-02"`), &d))
		assert.Equal(t, "1990-01-02", d.String())

		require.NoError(t, json.Unmarshal([]byte(`"1990-01-02T23:30:00+03:00"`), &d))
		assert.Equal(t, "1990-01-02", d.String())

		require.NoError(t, json.Unmarshal([]byte(`""`), &d))
		assert.True(t, d.IsZero())

		require.NoError(t, json.Unmarshal([]byte(`null`), &d))
		assert.True(t, d.IsZero())
	})

	t.Run("unmarshal rejects garbage", func(t *testing.T) {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(`"15/06/2000"`), &d))
		assert.Error(t, json.Unmarshal([]byte(`20000615`), &d))
	})
}

func TestID_JSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ID
		output   string
	}{
		{name: "number", input: `7`, expected: "7", output: `7`},
		{name: "numeric string", input: `"12"`, expected: "12", output: `12`},
		{name: "opaque string", input: `"a1b2"`, expected: "a1b2", output: `"a1b2"`},
		{name: "null", input: `null`, expected: "", output: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			require.NoError(t, json.Unmarshal([]byte(tt.input), &id))
			assert.Equal(t, tt.expected, id)

			data, err := json.Marshal(id)
			require.NoError(t, err)
			assert.Equal(t, tt.output, string(data))
		})
	}
}

func TestUser_JSONShape(t *testing.T) {
	raw := `{"id":3,"name":"Ann","address":"Main st. 1","email":"ann@example.com",
		"phone_number":"+100","job":"Engineer","company":"Acme","birthdate":"1980-03-04"}`

	var u User
	require.NoError(t, json.Unmarshal([]byte(raw), &u))

	assert.Equal(t, ID("3"), u.ID)
	assert.Equal(t, "Ann", u.Name)
	assert.Equal(t, "+100", u.PhoneNumber)
	assert.Equal(t, NewDate(1980, time.March, 4), u.Birthdate)

	data, err := json.Marshal(u.Person)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"id"`)
	assert.Contains(t, string(data), `"phone_number":"+100"`)
}

func TestID_Int(t *testing.T) {
	n, err := ID("42").Int()
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	_, err = ID("abc").Int()
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.Equal(t, ID("42"), IntID(42))
}
