package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/wellux/bloglist-backend/internal/apperr"
	"github.com/wellux/bloglist-backend/internal/auth"
	"github.com/wellux/bloglist-backend/internal/config"
	"github.com/wellux/bloglist-backend/internal/models"
	"github.com/wellux/bloglist-backend/internal/services"
)

// In-memory repositories standing in for the mongo-backed ones. They mirror
// the store's behavior the services depend on: not-found kinds and the unique
// username index.

type fakeUsers struct {
	order []string
	items map[string]models.User
}

func newFakeUsers() *fakeUsers { return &fakeUsers{items: map[string]models.User{}} }

func (f *fakeUsers) Insert(_ context.Context, u models.User) (models.User, error) {
	for _, existing := range f.items {
		if existing.Username == u.Username {
			return models.User{}, apperr.Conflict("expected `username` to be unique")
		}
	}
	f.items[u.ID] = u
	f.order = append(f.order, u.ID)
	return u, nil
}

func (f *fakeUsers) FindByID(_ context.Context, id string) (models.User, error) {
	u, ok := f.items[id]
	if !ok {
		return models.User{}, apperr.NotFound("user not found")
	}
	return u, nil
}

func (f *fakeUsers) FindByUsername(_ context.Context, username string) (models.User, error) {
	for _, u := range f.items {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, apperr.NotFound("user not found")
}

func (f *fakeUsers) FindAll(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.items[id])
	}
	return out, nil
}

type fakeBlogs struct {
	order []string
	items map[string]models.Blog
}

func newFakeBlogs() *fakeBlogs { return &fakeBlogs{items: map[string]models.Blog{}} }

func (f *fakeBlogs) Insert(_ context.Context, b models.Blog) (models.Blog, error) {
	f.items[b.ID] = b
	f.order = append(f.order, b.ID)
	return b, nil
}

func (f *fakeBlogs) FindByID(_ context.Context, id string) (models.Blog, error) {
	b, ok := f.items[id]
	if !ok {
		return models.Blog{}, apperr.NotFound("blog not found")
	}
	return b, nil
}

func (f *fakeBlogs) FindAll(_ context.Context) ([]models.Blog, error) {
	out := make([]models.Blog, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.items[id])
	}
	return out, nil
}

func (f *fakeBlogs) UpdateLikes(_ context.Context, id string, likes int) (models.Blog, error) {
	b, ok := f.items[id]
	if !ok {
		return models.Blog{}, apperr.NotFound("blog not found")
	}
	b.Likes = likes
	f.items[id] = b
	return b, nil
}

func (f *fakeBlogs) DeleteByID(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return nil
	}
	delete(f.items, id)
	for i, oid := range f.order {
		if oid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

type fixture struct {
	router http.Handler
	users  *fakeUsers
	blogs  *fakeBlogs
	tm     *auth.TokenManager
	hasher *auth.Hasher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := config.Config{Env: "test", RateRPS: 0}
	tm := auth.NewTokenManager("test-secret")
	hasher := auth.NewHasher(bcrypt.MinCost)
	users := newFakeUsers()
	blogs := newFakeBlogs()

	userSvc := services.NewUserService(users, blogs, hasher, tm)
	blogSvc := services.NewBlogService(blogs)

	return &fixture{
		router: NewRouter(cfg, tm, users, userSvc, blogSvc),
		users:  users,
		blogs:  blogs,
		tm:     tm,
		hasher: hasher,
	}
}

func (f *fixture) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

// doWithAuth sends the Authorization header verbatim.
func (f *fixture) doWithAuth(t *testing.T, method, path string, body any, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", authHeader)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) addUser(t *testing.T, username, name, password string) models.User {
	t.Helper()
	hash, err := f.hasher.Hash(password)
	require.NoError(t, err)
	u := models.User{ID: uuid.NewString(), Username: username, Name: name, PasswordHash: hash}
	_, err = f.users.Insert(context.Background(), u)
	require.NoError(t, err)
	return u
}

func (f *fixture) tokenFor(t *testing.T, userID string) string {
	t.Helper()
	token, err := f.tm.Issue(userID)
	require.NoError(t, err)
	return token
}

func (f *fixture) seedBlogs(t *testing.T, owner models.User) []models.Blog {
	t.Helper()
	seed := []struct {
		title, author, url string
		likes              int
	}{
		{"React patterns", "Michael Chan", "https://reactpatterns.com/", 7},
		{"Go To Statement Considered Harmful", "Edsger W. Dijkstra", "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html", 5},
		{"Canonical string reduction", "Edsger W. Dijkstra", "http://www.cs.utexas.edu/~EWD/transcriptions/EWD08xx/EWD808.html", 12},
		{"First class tests", "Robert C. Martin", "http://blog.cleancoder.com/uncle-bob/2017/05/05/TestDefinitions.html", 10},
		{"TDD harms architecture", "Robert C. Martin", "http://blog.cleancoder.com/uncle-bob/2017/03/03/TDD-Harms-Architecture.html", 0},
		{"Type wars", "Robert C. Martin", "http://blog.cleancoder.com/uncle-bob/2016/05/01/TypeWars.html", 2},
	}
	out := make([]models.Blog, 0, len(seed))
	for _, s := range seed {
		b := models.Blog{
			ID:     uuid.NewString(),
			Title:  s.title,
			Author: s.author,
			URL:    s.url,
			Likes:  s.likes,
			UserID: owner.ID,
		}
		_, err := f.blogs.Insert(context.Background(), b)
		require.NoError(t, err)
		out = append(out, b)
	}
	return out
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}
