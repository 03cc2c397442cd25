package store

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentFilter narrows public content listings. Zero value matches
// everything. Query is plain substring text, quoted before it becomes a
// regex, matched case-insensitively against the collection's text fields.
type ContentFilter struct {
	Query string
	Tag   string
}

func (f ContentFilter) toBson(textFields ...string) bson.M {
	filter := bson.M{}
	if f.Query != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Query), Options: "i"}
		or := make([]bson.M, 0, len(textFields))
		for _, field := range textFields {
			or = append(or, bson.M{field: re})
		}
		filter["$or"] = or
	}
	if f.Tag != "" {
		filter["tags"] = f.Tag
	}
	return filter
}

// FeedbackFilter narrows feedback listings. CreatedBy scopes the list to one
// submitter (the self-feedback view); Status narrows the admin inbox.
type FeedbackFilter struct {
	CreatedBy *primitive.ObjectID
	Status    string
}

func (f FeedbackFilter) toBson() bson.M {
	filter := bson.M{}
	if f.CreatedBy != nil {
		filter["createdBy"] = *f.CreatedBy
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return filter
}
