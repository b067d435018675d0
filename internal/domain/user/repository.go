package user

import (
	"context"
)

// Repository - хранилище записей на стороне сервера
type Repository interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id int64) (User, error)
	Create(ctx context.Context, p Person) (int64, error)
	Update(ctx context.Context, id int64, p Person) error
	Delete(ctx context.Context, id int64) error
}
