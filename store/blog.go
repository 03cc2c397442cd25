package store

import (
	"context"

	"github.com/noorix/hub/backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (db *DB) InsertBlog(ctx context.Context, blog *models.Blog) (primitive.ObjectID, error) {
	res, err := db.Blogs().InsertOne(ctx, blog, options.InsertOne())
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (db *DB) ListBlogs(ctx context.Context, filter ContentFilter) ([]models.Blog, error) {
	cur, err := db.Blogs().Find(ctx, filter.toBson("title", "excerpt", "content"),
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var blogs []models.Blog
	if err := cur.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (db *DB) BlogByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	var blog models.Blog
	err := db.Blogs().FindOne(ctx, bson.M{"_id": id}).Decode(&blog)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (db *DB) UpdateBlog(ctx context.Context, id primitive.ObjectID, blog *models.Blog) error {
	update := bson.M{
		"title":         blog.Title,
		"slug":          blog.Slug,
		"excerpt":       blog.Excerpt,
		"content":       blog.Content,
		"coverImageUrl": blog.CoverImageURL,
		"tags":          blog.Tags,
		"published":     blog.Published,
		"updatedAt":     blog.UpdatedAt,
	}
	_, err := db.Blogs().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (db *DB) DeleteBlog(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := db.Blogs().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
