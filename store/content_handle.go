package store

import (
	"context"

	"github.com/noorix/hub/backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (db *DB) InsertContentHandle(ctx context.Context, handle *models.ContentHandle) (primitive.ObjectID, error) {
	res, err := db.ContentHandles().InsertOne(ctx, handle, options.InsertOne())
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (db *DB) ListContentHandles(ctx context.Context) ([]models.ContentHandle, error) {
	cur, err := db.ContentHandles().Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "position", Value: 1}, {Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var handles []models.ContentHandle
	if err := cur.All(ctx, &handles); err != nil {
		return nil, err
	}
	return handles, nil
}

func (db *DB) ContentHandleByID(ctx context.Context, id primitive.ObjectID) (*models.ContentHandle, error) {
	var handle models.ContentHandle
	err := db.ContentHandles().FindOne(ctx, bson.M{"_id": id}).Decode(&handle)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &handle, nil
}

func (db *DB) UpdateContentHandle(ctx context.Context, id primitive.ObjectID, handle *models.ContentHandle) error {
	update := bson.M{
		"label": handle.Label,
		"url":   handle.URL,
		"icon":  handle.Icon,
	}
	_, err := db.ContentHandles().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

// SetContentHandlePosition writes one handle's position. An id that matches
// no document is not an error; the write simply touches zero records.
// Reordering is a sequence of these, one per id, not a transaction: a crash
// mid-way leaves the completed prefix renumbered and the rest untouched,
// which is acceptable for a display hint.
func (db *DB) SetContentHandlePosition(ctx context.Context, id primitive.ObjectID, position int) error {
	_, err := db.ContentHandles().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"position": position}})
	return err
}

func (db *DB) DeleteContentHandle(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := db.ContentHandles().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
