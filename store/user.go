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

func (db *DB) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := db.Users().FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (db *DB) UserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	err := db.Users().FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpsertUserByEmail creates the user record on first login and refreshes the
// identity fields (name, avatar) on every later one. The stored role is
// never touched here. Two concurrent first logins can both take the insert
// path; the unique index on email rejects the loser with a duplicate-key
// error, which we treat as "record already exists, re-read it".
func (db *DB) UpsertUserByEmail(ctx context.Context, email, name, avatarURL string) (*models.User, error) {
	filter := bson.M{"email": email}
	update := bson.M{
		"$set": bson.M{
			"name":      name,
			"avatarUrl": avatarURL,
		},
		"$setOnInsert": bson.M{
			"email":     email,
			"createdAt": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	var u models.User
	err := db.Users().FindOneAndUpdate(ctx, filter, update, opts).Decode(&u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return db.UserByEmail(ctx, email)
		}
		return nil, err
	}
	return &u, nil
}

// ListUsersExcluding returns all users except those with the given email,
// oldest first. Used by the root console, which hides the root record.
func (db *DB) ListUsersExcluding(ctx context.Context, email string) ([]models.User, error) {
	filter := bson.M{"email": bson.M{"$ne": email}}
	cur, err := db.Users().Find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUserRole persists a new stored role. This is the only writer of the
// role field. Setting the current value again is a no-op at the store level.
func (db *DB) UpdateUserRole(ctx context.Context, id primitive.ObjectID, role models.Role) error {
	_, err := db.Users().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": role}})
	return err
}
