package services

import (
	"testing"

	"factshub/internal/apperror"
	"factshub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidation(t *testing.T) {
	setupTestDB(t)

	cases := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"missing username", "", "a@b.pl", "secret123"},
		{"missing email", "tester", "", "secret123"},
		{"missing password", "tester", "a@b.pl", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Register(c.username, c.email, c.password)
			assert.ErrorIs(t, err, apperror.ErrValidation)
		})
	}
}

func TestRegisterDuplicateConflict(t *testing.T) {
	setupTestDB(t)

	_, err := Register("tester", "tester@factshub.pl", "secret123")
	require.NoError(t, err)

	_, err = Register("tester", "other@factshub.pl", "secret123")
	assert.ErrorIs(t, err, apperror.ErrConflict)

	_, err = Register("someone", "tester@factshub.pl", "secret123")
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestRegisterDefaultsToUserRole(t *testing.T) {
	setupTestDB(t)

	user, err := Register("tester", "tester@factshub.pl", "secret123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")
}

func TestAuthenticate(t *testing.T) {
	setupTestDB(t)

	registered, err := Register("tester", "tester@factshub.pl", "secret123")
	require.NoError(t, err)

	user, err := Authenticate("tester@factshub.pl", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = Authenticate("tester@factshub.pl", "wrong")
	assert.ErrorIs(t, err, apperror.ErrAuthentication)

	_, err = Authenticate("nobody@factshub.pl", "secret123")
	assert.ErrorIs(t, err, apperror.ErrAuthentication)
}
