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

func TestAddCommentWhitespaceOnlyFails(t *testing.T) {
	setupTestDB(t)
	category := createCategory(t, "Nauka")
	fact := createPublishedFact(t, "F", category.ID, time.Now())

	_, err := AddComment(Anonymous(), fact.ID, "   ", nil)
	assert.ErrorIs(t, err, apperror.ErrValidation)

	var count int64
	db.DB.Model(&models.Comment{}).Count(&count)
	assert.Zero(t, count)
}

func TestGuestCommentGetsLabel(t *testing.T) {
	setupTestDB(t)
	category := createCategory(t, "Nauka")
	fact := createPublishedFact(t, "F", category.ID, time.Now())

	comment, err := AddComment(Anonymous(), fact.ID, "hello there", nil)
	require.NoError(t, err)

	assert.Nil(t, comment.UserID)
	require.NotNil(t, comment.GuestName)
	assert.Equal(t, models.GuestName, *comment.GuestName)
	assert.Equal(t, models.GuestName, comment.AuthorName())
}

func TestUserCommentKeepsReference(t *testing.T) {
	setupTestDB(t)
	category := createCategory(t, "Nauka")
	fact := createPublishedFact(t, "F", category.ID, time.Now())
	user, actor := createUser(t, "tester", models.RoleUser)

	comment, err := AddComment(actor, fact.ID, "well researched", nil)
	require.NoError(t, err)

	require.NotNil(t, comment.UserID)
	assert.Equal(t, user.ID, *comment.UserID)
	assert.Nil(t, comment.GuestName)
}

func TestAddCommentFactMissing(t *testing.T) {
	setupTestDB(t)

	_, err := AddComment(Anonymous(), 424242, "hello", nil)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestReplyDepthIsLimited(t *testing.T) {
	setupTestDB(t)
	category := createCategory(t, "Nauka")
	fact := createPublishedFact(t, "F", category.ID, time.Now())
	other := createPublishedFact(t, "G", category.ID, time.Now())
	_, actor := createUser(t, "tester", models.RoleUser)

	top, err := AddComment(actor, fact.ID, "top level", nil)
	require.NoError(t, err)

	reply, err := AddComment(actor, fact.ID, "a reply", &top.ID)
	require.NoError(t, err)

	// Replies to replies are not allowed.
	_, err = AddComment(actor, fact.ID, "too deep", &reply.ID)
	assert.ErrorIs(t, err, apperror.ErrValidation)

	// Parent must belong to the same fact.
	_, err = AddComment(actor, other.ID, "crossed wires", &top.ID)
	assert.ErrorIs(t, err, apperror.ErrValidation)

	// Missing parent.
	missing := uint(424242)
	_, err = AddComment(actor, fact.ID, "orphan", &missing)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestListCommentsTopLevelWithLikes(t *testing.T) {
	setupTestDB(t)
	category := createCategory(t, "Nauka")
	fact := createPublishedFact(t, "F", category.ID, time.Now())
	_, alice := createUser(t, "alice", models.RoleUser)
	_, bob := createUser(t, "bob", models.RoleUser)

	first, err := AddComment(alice, fact.ID, "first!", nil)
	require.NoError(t, err)
	_, err = AddComment(bob, fact.ID, "a reply", &first.ID)
	require.NoError(t, err)
	second, err := AddComment(Anonymous(), fact.ID, "guest here", nil)
	require.NoError(t, err)

	_, err = AddReaction(bob, first.ID)
	require.NoError(t, err)

	comments, err := ListComments(fact.ID)
	require.NoError(t, err)

	// Replies are excluded from the top-level read path.
	require.Len(t, comments, 2)
	ids := []uint{comments[0].ID, comments[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)

	for _, com := range comments {
		if com.ID == first.ID {
			assert.EqualValues(t, 1, com.Likes)
			assert.Equal(t, "alice", com.AuthorName())
		}
		if com.ID == second.ID {
			assert.Zero(t, com.Likes)
			assert.Equal(t, models.GuestName, com.AuthorName())
		}
	}
}
