package user

import "time"

// RetirementAge - возраст, после которого пользователь считается пенсионером
const RetirementAge = 65

// Person - данные человека, которые собирает форма и хранит удаленное хранилище
type Person struct {
	Name        string `json:"name" doc:"Имя"`
	Address     string `json:"address" doc:"Адрес"`
	Email       string `json:"email" doc:"Электронная почта"`
	PhoneNumber string `json:"phone_number" doc:"Телефон"`
	Job         string `json:"job" doc:"Должность"`
	Company     string `json:"company" doc:"Компания"`
	Birthdate   Date   `json:"birthdate" doc:"Дата рождения (YYYY-MM-DD)"`
}

// User - запись хранилища: Person плюс идентификатор, выданный хранилищем
type User struct {
	ID ID `json:"id"`
	Person
}

// Age возвращает число полных лет на момент now.
// Если день рождения в этом году еще не наступил, вычитаем год.
func (p Person) Age(now time.Time) int {
	return Age(p.Birthdate, now)
}

// IsRetired сообщает, старше ли человек RetirementAge на момент now
func (p Person) IsRetired(now time.Time) bool {
	return p.Age(now) > RetirementAge
}

// Age считает полные годы между датой рождения и now
func Age(birthdate Date, now time.Time) int {
	if birthdate.IsZero() {
		return 0
	}

	by, bm, bd := birthdate.Date()
	ny, nm, nd := now.Date()

	age := ny - by
	if nm < bm || (nm == bm && nd < bd) {
		age--
	}
	return age
}
