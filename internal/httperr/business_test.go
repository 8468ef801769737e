package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsBusiness(t *testing.T) {
	err := ErrBusiness("invalid_transition")

	assert.True(t, IsBusiness(err, "invalid_transition"))
	assert.False(t, IsBusiness(err, "time_conflict"))
	assert.False(t, IsBusiness(errors.New("boom"), "invalid_transition"))
	assert.False(t, IsBusiness(nil, "invalid_transition"))

	// Matching survives wrapping.
	wrapped := fmt.Errorf("save: %w", err)
	assert.True(t, IsBusiness(wrapped, "invalid_transition"))
}

func TestConflictingIDs(t *testing.T) {
	err := ErrTimeConflict([]string{"a1", "a2"})

	assert.True(t, IsBusiness(err, "time_conflict"))
	assert.Equal(t, []string{"a1", "a2"}, ConflictingIDs(err))
	assert.Nil(t, ConflictingIDs(errors.New("boom")))
}

func TestIsExclusionConflict(t *testing.T) {
	exclusion := &pgconn.PgError{Code: "23P01"}

	assert.True(t, IsExclusionConflict(exclusion))
	assert.True(t, IsExclusionConflict(fmt.Errorf("insert: %w", exclusion)))
	assert.False(t, IsExclusionConflict(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsExclusionConflict(errors.New("boom")))
	assert.False(t, IsExclusionConflict(nil))
}
