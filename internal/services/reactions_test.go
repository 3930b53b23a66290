package services

import (
	"testing"
	"time"

	"factshub/internal/apperror"
	"factshub/internal/db"
	"factshub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReactionRequiresAuthentication(t *testing.T) {
	setupTestDB(t)
	category := createCategory(t, "Nauka")
	fact := createPublishedFact(t, "F", category.ID, time.Now())
	comment, err := AddComment(Anonymous(), fact.ID, "like me", nil)
	require.NoError(t, err)

	_, err = AddReaction(Anonymous(), comment.ID)
	assert.ErrorIs(t, err, apperror.ErrAuthentication)

	var count int64
	db.DB.Model(&models.Reaction{}).Count(&count)
	assert.Zero(t, count, "rejected reactions must not insert rows")
}

func TestReactionCommentMissing(t *testing.T) {
	setupTestDB(t)
	_, actor := createUser(t, "tester", models.RoleUser)

	_, err := AddReaction(actor, 424242)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestReactionDeduplicated(t *testing.T) {
	setupTestDB(t)
	category := createCategory(t, "Nauka")
	fact := createPublishedFact(t, "F", category.ID, time.Now())
	comment, err := AddComment(Anonymous(), fact.ID, "like me", nil)
	require.NoError(t, err)
	_, actor := createUser(t, "tester", models.RoleUser)

	likes, err := AddReaction(actor, comment.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, likes)

	// A second like from the same user is a no-op, not an error.
	likes, err = AddReaction(actor, comment.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, likes)

	var count int64
	db.DB.Model(&models.Reaction{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestReactionCountsPerComment(t *testing.T) {
	setupTestDB(t)
	category := createCategory(t, "Nauka")
	fact := createPublishedFact(t, "F", category.ID, time.Now())
	comment, err := AddComment(Anonymous(), fact.ID, "popular", nil)
	require.NoError(t, err)
	ignored, err := AddComment(Anonymous(), fact.ID, "ignored", nil)
	require.NoError(t, err)

	_, alice := createUser(t, "alice", models.RoleUser)
	_, bob := createUser(t, "bob", models.RoleUser)

	_, err = AddReaction(alice, comment.ID)
	require.NoError(t, err)
	likes, err := AddReaction(bob, comment.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, likes)

	comments, err := ListComments(fact.ID)
	require.NoError(t, err)
	for _, com := range comments {
		if com.ID == ignored.ID {
			assert.Zero(t, com.Likes)
		}
	}
}
