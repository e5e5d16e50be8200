package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wellux/bloglist-backend/internal/apperr"
	"github.com/wellux/bloglist-backend/internal/models"
)

type blogsRepo struct{ col *mongo.Collection }

func (r *blogsRepo) Insert(ctx context.Context, b models.Blog) (models.Blog, error) {
	if _, err := r.col.InsertOne(ctx, b); err != nil {
		return models.Blog{}, err
	}
	return b, nil
}

func (r *blogsRepo) FindByID(ctx context.Context, id string) (models.Blog, error) {
	var b models.Blog
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Blog{}, apperr.NotFound("blog not found")
	}
	return b, err
}

func (r *blogsRepo) FindAll(ctx context.Context) ([]models.Blog, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Blog
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *blogsRepo) UpdateLikes(ctx context.Context, id string, likes int) (models.Blog, error) {
	var b models.Blog
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"likes": likes}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Blog{}, apperr.NotFound("blog not found")
	}
	return b, err
}

func (r *blogsRepo) DeleteByID(ctx context.Context, id string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
