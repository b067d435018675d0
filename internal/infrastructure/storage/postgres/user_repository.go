package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
	"usercrud/internal/domain/user"
)

type UserRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewUserRepository(pool *pgxpool.Pool, log *slog.Logger) *UserRepository {
	return &UserRepository{
		pool: pool,
		log:  log.With("component", "user_repository"),
	}
}

// Ping проверяет соединение с базой
func (r *UserRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	const query = `
		SELECT id, name, address, email, phone_number, job, company, birthdate
		FROM users
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

func (r *UserRepository) Get(ctx context.Context, id int64) (user.User, error) {
	const query = `
		SELECT id, name, address, email, phone_number, job, company, birthdate
		FROM users
		WHERE id = $1`

	u, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		r.log.Error("failed to get user", "user_id", id, "error", err)
		return user.User{}, fmt.Errorf("get user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, p user.Person) (int64, error) {
	const query = `
		INSERT INTO users (name, address, email, phone_number, job, company, birthdate)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		p.Name, p.Address, p.Email, p.PhoneNumber, p.Job, p.Company, nullableDate(p.Birthdate),
	).Scan(&id)
	if err != nil {
		r.log.Error("failed to create user", "error", err)
		return 0, fmt.Errorf("create user: %w", err)
	}

	return id, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, p user.Person) error {
	const query = `
		UPDATE users
		SET name = $1, address = $2, email = $3, phone_number = $4,
		    job = $5, company = $6, birthdate = $7, updated_at = NOW()
		WHERE id = $8`

	result, err := r.pool.Exec(ctx, query,
		p.Name, p.Address, p.Email, p.PhoneNumber, p.Job, p.Company, nullableDate(p.Birthdate), id,
	)
	if err != nil {
		r.log.Error("failed to update user", "user_id", id, "error", err)
		return fmt.Errorf("update user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return user.ErrNotFound
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("failed to delete user", "user_id", id, "error", err)
		return fmt.Errorf("delete user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return user.ErrNotFound
	}

	return nil
}

func scanUser(row pgx.Row) (user.User, error) {
	var (
		u         user.User
		id        int64
		birthdate *time.Time
	)

	err := row.Scan(&id, &u.Name, &u.Address, &u.Email, &u.PhoneNumber, &u.Job, &u.Company, &birthdate)
	if err != nil {
		return user.User{}, err
	}

	u.ID = user.IntID(id)
	if birthdate != nil {
		y, m, d := birthdate.Date()
		u.Birthdate = user.NewDate(y, m, d)
	}

	return u, nil
}

// nullableDate превращает нулевую дату в NULL
func nullableDate(d user.Date) any {
	if d.IsZero() {
		return nil
	}
	return d.Time
}
