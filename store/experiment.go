package store

import (
	"context"

	"github.com/noorix/hub/backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (db *DB) InsertExperiment(ctx context.Context, exp *models.Experiment) (primitive.ObjectID, error) {
	res, err := db.Experiments().InsertOne(ctx, exp, options.InsertOne())
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (db *DB) ListExperiments(ctx context.Context, filter ContentFilter) ([]models.Experiment, error) {
	cur, err := db.Experiments().Find(ctx, filter.toBson("title", "description"),
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var exps []models.Experiment
	if err := cur.All(ctx, &exps); err != nil {
		return nil, err
	}
	return exps, nil
}

func (db *DB) ExperimentByID(ctx context.Context, id primitive.ObjectID) (*models.Experiment, error) {
	var exp models.Experiment
	err := db.Experiments().FindOne(ctx, bson.M{"_id": id}).Decode(&exp)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &exp, nil
}

func (db *DB) UpdateExperiment(ctx context.Context, id primitive.ObjectID, exp *models.Experiment) error {
	update := bson.M{
		"title":       exp.Title,
		"description": exp.Description,
		"linkUrl":     exp.LinkURL,
		"imageUrl":    exp.ImageURL,
		"tags":        exp.Tags,
		"updatedAt":   exp.UpdatedAt,
	}
	_, err := db.Experiments().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (db *DB) DeleteExperiment(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := db.Experiments().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
