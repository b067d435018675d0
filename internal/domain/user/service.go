package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

// Servicer - операции хранилища записей, которые публикует REST API
type Servicer interface {
	List(ctx context.Context) ([]User, error)
	Find(ctx context.Context, id ID) (User, error)
	Create(ctx context.Context, p Person) (User, error)
	Update(ctx context.Context, id ID, p Person) (User, error)
	Delete(ctx context.Context, id ID) error
}

// Service implements Servicer on top of a Repository
type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService creates a new user service
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "user_service"),
	}
}

// List returns all stored users
func (s *Service) List(ctx context.Context) ([]User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("list users: %w", err)
	}

	if users == nil {
		users = make([]User, 0)
	}
	return users, nil
}

// Find returns a single user by ID
func (s *Service) Find(ctx context.Context, id ID) (User, error) {
	key, err := id.Int()
	if err != nil {
		return User{}, err
	}

	u, err := s.repo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrNotFound
		}
		s.log.Error("failed to find user", "user_id", id, "error", err)
		return User{}, fmt.Errorf("find user: %w", err)
	}

	return u, nil
}

// Create stores a new user; the repository assigns the ID
func (s *Service) Create(ctx context.Context, p Person) (User, error) {
	key, err := s.repo.Create(ctx, p)
	if err != nil {
		s.log.Error("failed to create user", "error", err)
		return User{}, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user created successfully", "user_id", key)

	return User{ID: IntID(key), Person: p}, nil
}

// Update replaces every field of an existing user
func (s *Service) Update(ctx context.Context, id ID, p Person) (User, error) {
	key, err := id.Int()
	if err != nil {
		return User{}, err
	}

	if err := s.repo.Update(ctx, key, p); err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrNotFound
		}
		s.log.Error("failed to update user", "user_id", id, "error", err)
		return User{}, fmt.Errorf("update user: %w", err)
	}

	s.log.Info("user updated successfully", "user_id", key)

	return User{ID: IntID(key), Person: p}, nil
}

// Delete removes a user
func (s *Service) Delete(ctx context.Context, id ID) error {
	key, err := id.Int()
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, key); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete user", "user_id", id, "error", err)
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.Info("user deleted successfully", "user_id", id)

	return nil
}
