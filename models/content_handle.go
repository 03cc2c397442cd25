package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentHandle is an ordered navigation link shown on the public site.
// Position is a display hint only; it is not unique-enforced.
type ContentHandle struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Label     string             `bson:"label" json:"label"`
	URL       string             `bson:"url" json:"url"`
	Icon      string             `bson:"icon,omitempty" json:"icon,omitempty"`
	Position  int                `bson:"position" json:"position"`
	CreatedBy primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
