package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{New(ErrValidation, "title is required"), http.StatusBadRequest},
		{New(ErrAuthentication, "login required"), http.StatusUnauthorized},
		{New(ErrPermission, "moderator role required"), http.StatusForbidden},
		{New(ErrNotFound, "fact not found"), http.StatusNotFound},
		{New(ErrConflict, "username already taken"), http.StatusConflict},
		{Store(errors.New("dial tcp: connection refused")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.code, Status(c.err))
	}
}

func TestKindClassification(t *testing.T) {
	err := New(ErrValidation, "content cannot be empty")
	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrPermission))
	assert.Equal(t, "content cannot be empty", err.Error())
}

func TestStoreErrorsNeverLeak(t *testing.T) {
	cause := errors.New("pq: password authentication failed for user \"factshub\"")
	err := Store(cause)

	assert.True(t, errors.Is(err, ErrStore))
	assert.NotContains(t, UserMessage(err), "pq:")
	// Cause stays reachable for logging.
	assert.ErrorIs(t, err, cause)
}
