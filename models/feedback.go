package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FeedbackStatus values. Any content manager may move a feedback item to any
// of the four states at any time; there is no enforced transition order and
// no terminal state.
type FeedbackStatus string

const (
	FeedbackNew        FeedbackStatus = "new"
	FeedbackInProgress FeedbackStatus = "in_progress"
	FeedbackResolved   FeedbackStatus = "resolved"
	FeedbackClosed     FeedbackStatus = "closed"
)

var FeedbackStatuses = []FeedbackStatus{FeedbackNew, FeedbackInProgress, FeedbackResolved, FeedbackClosed}

func FeedbackStatusValid(s FeedbackStatus) bool {
	for _, v := range FeedbackStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type Feedback struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Subject        string             `bson:"subject" json:"subject"`
	Message        string             `bson:"message" json:"message"`
	Status         FeedbackStatus     `bson:"status" json:"status"`
	AdminResponse  string             `bson:"adminResponse,omitempty" json:"adminResponse,omitempty"`
	CreatedBy      primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	CreatedByEmail string             `bson:"createdByEmail" json:"createdByEmail"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
