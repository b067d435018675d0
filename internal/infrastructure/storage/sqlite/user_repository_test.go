package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
	"usercrud/internal/domain/user"
)

func newTestRepository(t *testing.T) *UserRepository {
	t.Helper()

	repo, err := New(filepath.Join(t.TempDir(), "users.db"), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	return repo
}

func TestUserRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	p := user.Person{
		Name:        "Jane Roe",
		Address:     "221B Baker st.",
		Email:       "jane@example.com",
		PhoneNumber: "+44 20 0000",
		Job:         "Detective",
		Company:     "Yard",
		Birthdate:   user.NewDate(1954, time.January, 6),
	}

	id, err := repo.Create(ctx, p)
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, user.IntID(id), got.ID)
	assert.Equal(t, p, got.Person)

	p.Company = "Private"
	require.NoError(t, repo.Update(ctx, id, p))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Private", users[0].Company)

	require.NoError(t, repo.Delete(ctx, id))
	_, err = repo.Get(ctx, id)
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestUserRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	assert.ErrorIs(t, repo.Update(ctx, 100, user.Person{Name: "x"}), user.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 100), user.ErrNotFound)
}

func TestUserRepository_ZeroBirthdate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	id, err := repo.Create(ctx, user.Person{Name: "No Date"})
	require.NoError(t, err)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.Birthdate.IsZero())
}

func TestUserRepository_Ping(t *testing.T) {
	repo := newTestRepository(t)

	assert.NoError(t, repo.Ping(context.Background()))
}
