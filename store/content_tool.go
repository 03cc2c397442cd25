package store

import (
	"context"

	"github.com/noorix/hub/backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (db *DB) InsertContentTool(ctx context.Context, tool *models.ContentTool) (primitive.ObjectID, error) {
	res, err := db.ContentTools().InsertOne(ctx, tool, options.InsertOne())
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (db *DB) ListContentTools(ctx context.Context, filter ContentFilter) ([]models.ContentTool, error) {
	cur, err := db.ContentTools().Find(ctx, filter.toBson("name", "description"),
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var tools []models.ContentTool
	if err := cur.All(ctx, &tools); err != nil {
		return nil, err
	}
	return tools, nil
}

func (db *DB) ContentToolByID(ctx context.Context, id primitive.ObjectID) (*models.ContentTool, error) {
	var tool models.ContentTool
	err := db.ContentTools().FindOne(ctx, bson.M{"_id": id}).Decode(&tool)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tool, nil
}

func (db *DB) UpdateContentTool(ctx context.Context, id primitive.ObjectID, tool *models.ContentTool) error {
	update := bson.M{
		"name":        tool.Name,
		"description": tool.Description,
		"url":         tool.URL,
		"iconUrl":     tool.IconURL,
		"tags":        tool.Tags,
		"updatedAt":   tool.UpdatedAt,
	}
	_, err := db.ContentTools().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (db *DB) DeleteContentTool(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := db.ContentTools().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
