package memory

import (
	"context"
	"sort"
	"sync"

	"usercrud/internal/domain/user"
)

// UserRepository - хранилище пользователей в памяти процесса
type UserRepository struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]user.Person
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		nextID: 1,
		users:  make(map[int64]user.Person),
	}
}

func (r *UserRepository) List(_ context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	users := make([]user.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, user.User{ID: user.IntID(id), Person: r.users[id]})
	}
	return users, nil
}

func (r *UserRepository) Get(_ context.Context, id int64) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return user.User{ID: user.IntID(id), Person: p}, nil
}

func (r *UserRepository) Create(_ context.Context, p user.Person) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.users[id] = p
	return id, nil
}

func (r *UserRepository) Update(_ context.Context, id int64, p user.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return user.ErrNotFound
	}
	r.users[id] = p
	return nil
}

func (r *UserRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return user.ErrNotFound
	}
	delete(r.users, id)
	return nil
}
