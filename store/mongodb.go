package store

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDB(ctx context.Context, uri, dbName string) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	logrus.Info("connected to MongoDB")
	return &DB{
		Client:   client,
		Database: client.Database(dbName),
	}, nil
}

// EnsureIndexes creates the indexes the store relies on. The unique index on
// users.email is what keeps concurrent first logins from creating two
// records for the same identity.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	_, err := db.Users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (db *DB) Users() *mongo.Collection {
	return db.Database.Collection("users")
}

func (db *DB) Blogs() *mongo.Collection {
	return db.Database.Collection("blogs")
}

func (db *DB) Experiments() *mongo.Collection {
	return db.Database.Collection("experiments")
}

func (db *DB) Products() *mongo.Collection {
	return db.Database.Collection("products")
}

func (db *DB) ContentHandles() *mongo.Collection {
	return db.Database.Collection("content_handles")
}

func (db *DB) ContentTools() *mongo.Collection {
	return db.Database.Collection("content_tools")
}

func (db *DB) Feedback() *mongo.Collection {
	return db.Database.Collection("feedback")
}

func (db *DB) Disconnect(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return db.Client.Disconnect(ctx)
}
