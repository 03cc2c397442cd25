package store

import (
	"context"

	"github.com/noorix/hub/backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (db *DB) InsertProduct(ctx context.Context, product *models.Product) (primitive.ObjectID, error) {
	res, err := db.Products().InsertOne(ctx, product, options.InsertOne())
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (db *DB) ListProducts(ctx context.Context, filter ContentFilter) ([]models.Product, error) {
	cur, err := db.Products().Find(ctx, filter.toBson("name", "tagline", "description"),
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (db *DB) ProductByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := db.Products().FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (db *DB) UpdateProduct(ctx context.Context, id primitive.ObjectID, product *models.Product) error {
	update := bson.M{
		"name":        product.Name,
		"tagline":     product.Tagline,
		"description": product.Description,
		"imageUrl":    product.ImageURL,
		"linkUrl":     product.LinkURL,
		"tags":        product.Tags,
		"updatedAt":   product.UpdatedAt,
	}
	_, err := db.Products().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (db *DB) DeleteProduct(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := db.Products().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
