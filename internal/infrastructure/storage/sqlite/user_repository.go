package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"
	"usercrud/internal/domain/user"
)

type UserRepository struct {
	db  *sql.DB
	log *slog.Logger
}

// New открывает (или создает) файл базы и таблицу users
func New(path string, log *slog.Logger) (*UserRepository, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}

	repo := &UserRepository{
		db:  db,
		log: log.With("component", "sqlite_user_repository"),
	}

	if err := repo.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка инициализации таблиц: %w", err)
	}

	return repo, nil
}

// Ping проверяет доступность файла базы
func (r *UserRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *UserRepository) initTables() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			phone_number TEXT NOT NULL DEFAULT '',
			job TEXT NOT NULL DEFAULT '',
			company TEXT NOT NULL DEFAULT '',
			birthdate TEXT NOT NULL DEFAULT ''
		);
	`)
	return err
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, address, email, phone_number, job, company, birthdate
		FROM users
		ORDER BY id
	`)
	if err != nil {
		r.log.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

func (r *UserRepository) Get(ctx context.Context, id int64) (user.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, address, email, phone_number, job, company, birthdate
		FROM users
		WHERE id = ?
	`, id)

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, user.ErrNotFound
	}
	if err != nil {
		return user.User{}, err
	}

	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, p user.Person) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO users (name, address, email, phone_number, job, company, birthdate)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, p.Name, p.Address, p.Email, p.PhoneNumber, p.Job, p.Company, p.Birthdate.String())
	if err != nil {
		r.log.Error("failed to create user", "error", err)
		return 0, fmt.Errorf("create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}

	return id, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, p user.Person) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET name = ?, address = ?, email = ?, phone_number = ?, job = ?, company = ?, birthdate = ?
		WHERE id = ?
	`, p.Name, p.Address, p.Email, p.PhoneNumber, p.Job, p.Company, p.Birthdate.String(), id)
	if err != nil {
		r.log.Error("failed to update user", "user_id", id, "error", err)
		return fmt.Errorf("update user: %w", err)
	}

	return checkAffected(result)
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		r.log.Error("failed to delete user", "user_id", id, "error", err)
		return fmt.Errorf("delete user: %w", err)
	}

	return checkAffected(result)
}

func (r *UserRepository) Close() error {
	return r.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (user.User, error) {
	var (
		u         user.User
		id        int64
		birthdate string
	)

	if err := row.Scan(&id, &u.Name, &u.Address, &u.Email, &u.PhoneNumber, &u.Job, &u.Company, &birthdate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, err
		}
		return user.User{}, fmt.Errorf("ошибка сканирования записи: %w", err)
	}

	d, err := user.ParseDate(birthdate)
	if err != nil {
		return user.User{}, fmt.Errorf("ошибка разбора даты рождения: %w", err)
	}

	u.ID = user.IntID(id)
	u.Birthdate = d
	return u, nil
}

func checkAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}
