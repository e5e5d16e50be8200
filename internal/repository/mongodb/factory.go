package mongodb

import (
	"go.mongodb.org/mongo-driver/mongo"

	repo "github.com/wellux/bloglist-backend/internal/repository"
)

type Repositories struct {
	Users repo.Users
	Blogs repo.Blogs
}

func NewRepositories(database *mongo.Database) Repositories {
	return Repositories{
		Users: &usersRepo{col: database.Collection("users")},
		Blogs: &blogsRepo{col: database.Collection("blogs")},
	}
}
