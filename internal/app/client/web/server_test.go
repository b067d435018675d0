package web

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/exp/slog"

	"usercrud/internal/domain/user"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type MockStore struct {
	mock.Mock
}

func (m *MockStore) ListAll(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *MockStore) Create(ctx context.Context, p user.Person) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockStore) Update(ctx context.Context, id user.ID, p user.Person) error {
	return m.Called(ctx, id, p).Error(0)
}

func (m *MockStore) Delete(ctx context.Context, id user.ID) error {
	return m.Called(ctx, id).Error(0)
}

func users(n int) []user.User {
	out := make([]user.User, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, user.User{
			ID: user.IntID(int64(i)),
			Person: user.Person{
				Name:      fmt.Sprintf("Person %d", i),
				Email:     fmt.Sprintf("p%d@example.com", i),
				Birthdate: user.NewDate(1980, time.January, 1),
			},
		})
	}
	return out
}

func newTestServer(t *testing.T, store *MockStore) *Server {
	t.Helper()

	s, err := New(store, slog.Default())
	require.NoError(t, err)
	require.NoError(t, s.App().Load(context.Background()))
	return s
}

func get(t *testing.T, s *Server) string {
	t.Helper()

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func post(t *testing.T, s *Server, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_IndexAndPaging(t *testing.T) {
	store := new(MockStore)
	store.On("ListAll", mock.Anything).Return(users(25), nil)
	s := newTestServer(t, store)

	body := get(t, s)
	assert.Contains(t, body, "Page 1 of 3")
	assert.Contains(t, body, "Person 10")
	assert.NotContains(t, body, "Person 11<")

	rec := post(t, s, "/page/next", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	post(t, s, "/page/next", nil)
	post(t, s, "/page/next", nil)

	body = get(t, s)
	assert.Contains(t, body, "Page 3 of 3")
	assert.Contains(t, body, "Person 25")

	post(t, s, "/search", url.Values{"q": {"P7@"}})
	body = get(t, s)
	assert.Contains(t, body, "Page 1 of 1")
	assert.Contains(t, body, "Person 7")
	assert.NotContains(t, body, "Person 8")
}

func TestServer_CreateFlow(t *testing.T) {
	store := new(MockStore)
	store.On("ListAll", mock.Anything).Return(users(1), nil)
	s := newTestServer(t, store)

	post(t, s, "/users/new", nil)
	assert.Contains(t, get(t, s), "Add user</h2>")

	form := url.Values{
		"id":           {""},
		"name":         {"Ann"},
		"address":      {"a"},
		"email":        {"ann@example.com"},
		"phone_number": {"555"},
		"job":          {"j"},
		"company":      {"c"},
		"birthdate":    {"1990-03-01"},
	}
	expected := user.Person{
		Name: "Ann", Address: "a", Email: "ann@example.com", PhoneNumber: "555",
		Job: "j", Company: "c", Birthdate: user.NewDate(1990, time.March, 1),
	}
	store.On("Create", mock.Anything, expected).Return(nil)

	rec := post(t, s, "/users", form)
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	body := get(t, s)
	assert.Contains(t, body, "User added successfully")
	assert.NotContains(t, body, `role="dialog"`)

	// уведомление показывается один раз
	assert.NotContains(t, get(t, s), "User added successfully")
	store.AssertExpectations(t)
}

func TestServer_UpdateFailureKeepsDialog(t *testing.T) {
	store := new(MockStore)
	store.On("ListAll", mock.Anything).Return(users(2), nil)
	s := newTestServer(t, store)

	post(t, s, "/users/2/edit", nil)
	body := get(t, s)
	assert.Contains(t, body, "Edit user</h2>")
	assert.Contains(t, body, `value="Person 2"`)
	assert.Contains(t, body, `value="1980-01-01"`)

	store.On("Update", mock.Anything, user.ID("2"), mock.Anything).Return(assert.AnError)

	post(t, s, "/users", url.Values{"id": {"2"}, "name": {"Renamed"}, "birthdate": {"1980-01-01"}})

	body = get(t, s)
	assert.Contains(t, body, "Failed to update user")
	assert.Contains(t, body, `role="dialog"`)
	assert.Contains(t, body, `value="Renamed"`)

	post(t, s, "/dialog/close", nil)
	assert.NotContains(t, get(t, s), `role="dialog"`)
}

func TestServer_EditUnknown(t *testing.T) {
	store := new(MockStore)
	store.On("ListAll", mock.Anything).Return(users(1), nil)
	s := newTestServer(t, store)

	rec := post(t, s, "/users/42/edit", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_Delete(t *testing.T) {
	store := new(MockStore)
	store.On("ListAll", mock.Anything).Return(users(1), nil)
	store.On("Delete", mock.Anything, user.ID("1")).Return(nil).Once()
	store.On("Delete", mock.Anything, user.ID("1")).Return(assert.AnError).Once()
	s := newTestServer(t, store)

	post(t, s, "/users/1/delete", nil)
	assert.Contains(t, get(t, s), "User has been deleted.")

	post(t, s, "/users/1/delete", nil)
	assert.Contains(t, get(t, s), "Could not delete the user.")
}

func TestServer_EscapesValues(t *testing.T) {
	store := new(MockStore)
	store.On("ListAll", mock.Anything).Return([]user.User{
		{ID: "1", Person: user.Person{Name: "<script>alert(1)</script>"}},
	}, nil)
	s := newTestServer(t, store)

	body := get(t, s)
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "&lt;script&gt;")
}
