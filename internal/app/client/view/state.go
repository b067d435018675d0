// Package view хранит загруженную коллекцию записей, строку поиска и номер
// страницы и вычисляет видимый срез таблицы.
package view

import (
	"strings"

	"usercrud/internal/domain/user"
)

// PageSize - количество строк на странице таблицы
const PageSize = 10

// State - коллекция записей и состояние просмотра.
// Не потокобезопасен: владелец сериализует доступ сам.
type State struct {
	users  []user.User
	search string
	page   int
}

// New создает пустое состояние на первой странице
func New() *State {
	return &State{page: 1}
}

// Replace заменяет коллекцию целиком. Страница не сбрасывается.
func (s *State) Replace(users []user.User) {
	s.users = append([]user.User(nil), users...)
}

// Users возвращает всю коллекцию
func (s *State) Users() []user.User {
	return s.users
}

// SetSearch меняет строку поиска и возвращает на первую страницу
func (s *State) SetSearch(text string) {
	s.search = text
	s.page = 1
}

func (s *State) Search() string {
	return s.search
}

func (s *State) Page() int {
	return s.page
}

// Next переходит на следующую страницу, если она существует
func (s *State) Next() bool {
	if s.page >= s.TotalPages() {
		return false
	}
	s.page++
	return true
}

// Prev переходит на предыдущую страницу, если она существует
func (s *State) Prev() bool {
	if s.page <= 1 {
		return false
	}
	s.page--
	return true
}

// Filtered возвращает записи, у которых имя или email содержит строку поиска
// без учета регистра. Пустой поиск пропускает все записи.
func (s *State) Filtered() []user.User {
	if s.search == "" {
		return s.users
	}

	needle := strings.ToLower(s.search)
	filtered := make([]user.User, 0, len(s.users))
	for _, u := range s.users {
		if strings.Contains(strings.ToLower(u.Name), needle) ||
			strings.Contains(strings.ToLower(u.Email), needle) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

// Visible возвращает срез отфильтрованных записей для текущей страницы
func (s *State) Visible() []user.User {
	return pageOf(s.Filtered(), s.page)
}

// TotalPages - ceil(отфильтровано / PageSize); 0 для пустого результата
func (s *State) TotalPages() int {
	return totalPages(len(s.Filtered()))
}

// Find ищет запись в коллекции по id
func (s *State) Find(id user.ID) (user.User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return user.User{}, false
}

// Snapshot возвращает независимую копию для рендеринга вне блокировки
func (s *State) Snapshot() Snapshot {
	filtered := s.Filtered()
	return Snapshot{
		Search:     s.search,
		Page:       s.page,
		TotalPages: totalPages(len(filtered)),
		Visible:    append([]user.User(nil), pageOf(filtered, s.page)...),
	}
}

// Snapshot - неизменяемый срез состояния для рендерера
type Snapshot struct {
	Search     string
	Page       int
	TotalPages int
	Visible    []user.User
}

func totalPages(n int) int {
	return (n + PageSize - 1) / PageSize
}

func pageOf(users []user.User, page int) []user.User {
	start := (page - 1) * PageSize
	if start < 0 {
		start = 0
	}
	if start >= len(users) {
		return []user.User{}
	}

	end := start + PageSize
	if end > len(users) {
		end = len(users)
	}
	return users[start:end]
}
