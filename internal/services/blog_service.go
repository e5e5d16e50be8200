package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/wellux/bloglist-backend/internal/apperr"
	"github.com/wellux/bloglist-backend/internal/models"
	repo "github.com/wellux/bloglist-backend/internal/repository"
)

type BlogService struct {
	blogs repo.Blogs
}

func NewBlogService(blogs repo.Blogs) *BlogService {
	return &BlogService{blogs: blogs}
}

type BlogInput struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

func (s *BlogService) Create(ctx context.Context, in BlogInput, owner models.User) (models.Blog, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.URL) == "" {
		return models.Blog{}, apperr.Validation("title or url missing")
	}
	b := models.Blog{
		ID:     uuid.NewString(),
		Title:  in.Title,
		Author: in.Author,
		URL:    in.URL,
		Likes:  in.Likes,
		UserID: owner.ID,
	}
	return s.blogs.Insert(ctx, b)
}

func (s *BlogService) List(ctx context.Context) ([]models.Blog, error) {
	blogs, err := s.blogs.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if blogs == nil {
		blogs = []models.Blog{}
	}
	return blogs, nil
}

// UpdateLikes changes only the likes count. A syntactically invalid id is a
// validation failure; an unknown id surfaces as not-found (both map to 400).
func (s *BlogService) UpdateLikes(ctx context.Context, id string, likes int) (models.Blog, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.Blog{}, apperr.Validation("malformatted id")
	}
	return s.blogs.UpdateLikes(ctx, id, likes)
}

// Delete is idempotent: an absent or malformed id is a no-op. Deleting an
// existing blog requires the requester to be its owner.
func (s *BlogService) Delete(ctx context.Context, id string, requester models.User) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	b, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil
		}
		return err
	}
	if b.UserID != requester.ID {
		return apperr.Forbidden("not the owner")
	}
	return s.blogs.DeleteByID(ctx, id)
}

type Stats struct {
	Count      int          `json:"count"`
	TotalLikes int          `json:"totalLikes"`
	Favorite   *models.Blog `json:"favorite,omitempty"`
}

func (s *BlogService) Stats(ctx context.Context) (Stats, error) {
	blogs, err := s.blogs.FindAll(ctx)
	if err != nil {
		return Stats{}, err
	}
	st := Stats{Count: len(blogs), TotalLikes: models.TotalLikes(blogs)}
	if fav, ok := models.FavoriteBlog(blogs); ok {
		st.Favorite = &fav
	}
	return st, nil
}
