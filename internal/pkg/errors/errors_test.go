package errors_test

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/directory-platform/internal/pkg/errors"
)

func TestWithReason(t *testing.T) {
	err := errors.ErrInvalidRequest.WithReason("id must be a valid UUID")

	assert.Equal(t, "INVALID_REQUEST", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, map[string]interface{}{"reason": "id must be a valid UUID"}, err.Details)

	// The sentinel itself stays untouched.
	assert.Nil(t, errors.ErrInvalidRequest.Details)
}

func TestWithDetails_CloneSatisfiesErrorsIs(t *testing.T) {
	err := errors.ErrCitySlugCollision.WithDetails(map[string]interface{}{
		"slug": "st-louis",
	})

	assert.ErrorIs(t, err, errors.ErrCitySlugCollision)
	assert.NotErrorIs(t, err, errors.ErrSiteNotFound)
}

func TestIsInfrastructure(t *testing.T) {
	assert.True(t, errors.IsInfrastructure(errors.ErrDatabaseError))
	assert.True(t, errors.IsInfrastructure(errors.ErrCacheError))
	assert.False(t, errors.IsInfrastructure(errors.ErrSiteNotFound))
	assert.False(t, errors.IsInfrastructure(errors.ErrInvalidRequest.WithReason("bad id")))
	assert.False(t, errors.IsInfrastructure(stderrors.New("plain")))
}
