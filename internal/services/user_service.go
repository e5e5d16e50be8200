package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/wellux/bloglist-backend/internal/apperr"
	"github.com/wellux/bloglist-backend/internal/auth"
	"github.com/wellux/bloglist-backend/internal/models"
	repo "github.com/wellux/bloglist-backend/internal/repository"
)

type UserService struct {
	users  repo.Users
	blogs  repo.Blogs
	hasher *auth.Hasher
	tm     *auth.TokenManager
}

func NewUserService(users repo.Users, blogs repo.Blogs, hasher *auth.Hasher, tm *auth.TokenManager) *UserService {
	return &UserService{users: users, blogs: blogs, hasher: hasher, tm: tm}
}

func (s *UserService) Register(ctx context.Context, username, name, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if err := models.ValidateNewUser(username, password); err != nil {
		return models.User{}, err
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return models.User{}, err
	}
	u := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Name:         name,
		PasswordHash: hash,
		Blogs:        []models.BlogRef{},
	}
	return s.users.Insert(ctx, u)
}

// List returns all users, each carrying its blogs projected to {id, author, title}.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	blogs, err := s.blogs.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	byOwner := make(map[string][]models.BlogRef, len(users))
	for _, b := range blogs {
		byOwner[b.UserID] = append(byOwner[b.UserID], b.Ref())
	}
	for i := range users {
		refs := byOwner[users[i].ID]
		if refs == nil {
			refs = []models.BlogRef{}
		}
		users[i].Blogs = refs
	}
	return users, nil
}

type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

func (s *UserService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return LoginResult{}, apperr.InvalidCredentials("invalid username or password")
		}
		return LoginResult{}, err
	}
	if err := s.hasher.Compare(password, u.PasswordHash); err != nil {
		return LoginResult{}, apperr.InvalidCredentials("invalid username or password")
	}
	token, err := s.tm.Issue(u.ID)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: token, Username: u.Username, Name: u.Name}, nil
}
