package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContentTool struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	URL         string             `bson:"url,omitempty" json:"url,omitempty"`
	IconURL     string             `bson:"iconUrl,omitempty" json:"iconUrl,omitempty"`
	Tags        []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedBy   primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
