package store

import (
	"context"
	"time"

	"github.com/noorix/hub/backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (db *DB) InsertFeedback(ctx context.Context, fb *models.Feedback) (primitive.ObjectID, error) {
	res, err := db.Feedback().InsertOne(ctx, fb, options.InsertOne())
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (db *DB) ListFeedback(ctx context.Context, filter FeedbackFilter) ([]models.Feedback, error) {
	cur, err := db.Feedback().Find(ctx, filter.toBson(),
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var items []models.Feedback
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (db *DB) FeedbackByID(ctx context.Context, id primitive.ObjectID) (*models.Feedback, error) {
	var fb models.Feedback
	err := db.Feedback().FindOne(ctx, bson.M{"_id": id}).Decode(&fb)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fb, nil
}

// UpdateFeedbackReview sets the triage fields. Status and adminResponse move
// independently; either may be updated without the other.
func (db *DB) UpdateFeedbackReview(ctx context.Context, id primitive.ObjectID, status *models.FeedbackStatus, adminResponse *string) error {
	updates := bson.M{}
	if status != nil {
		updates["status"] = *status
	}
	if adminResponse != nil {
		updates["adminResponse"] = *adminResponse
	}
	if len(updates) == 0 {
		return nil
	}
	updates["updatedAt"] = time.Now()
	_, err := db.Feedback().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	return err
}

func (db *DB) DeleteFeedback(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := db.Feedback().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
