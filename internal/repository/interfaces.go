package repository

import (
	"context"

	"github.com/wellux/bloglist-backend/internal/models"
)

// Narrow per-collection contracts; implementations map store errors onto the
// apperr taxonomy (not-found, duplicate key).

type Users interface {
	Insert(ctx context.Context, u models.User) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
}

type Blogs interface {
	Insert(ctx context.Context, b models.Blog) (models.Blog, error)
	FindByID(ctx context.Context, id string) (models.Blog, error)
	FindAll(ctx context.Context) ([]models.Blog, error)
	UpdateLikes(ctx context.Context, id string, likes int) (models.Blog, error)
	DeleteByID(ctx context.Context, id string) error
}
