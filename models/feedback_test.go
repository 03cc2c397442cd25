package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedbackStatusValid(t *testing.T) {
	for _, s := range FeedbackStatuses {
		assert.True(t, FeedbackStatusValid(s), string(s))
	}
	assert.False(t, FeedbackStatusValid("open"))
	assert.False(t, FeedbackStatusValid(""))
	assert.False(t, FeedbackStatusValid("Resolved"))
}

func TestRoleAssignable(t *testing.T) {
	assert.True(t, RoleAssignable(RoleAdmin))
	assert.True(t, RoleAssignable(RoleUser))
	// Root is never an assignable value.
	assert.False(t, RoleAssignable(RoleRoot))
	assert.False(t, RoleAssignable(""))
	assert.False(t, RoleAssignable("superuser"))
}
