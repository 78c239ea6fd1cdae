package user

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/prefin/internal/apperr"
)

func TestTranslateInsertError(t *testing.T) {
	email := &pq.Error{Code: "23505", Constraint: "users_email_key"}
	assert.ErrorIs(t, translateInsertError(fmt.Errorf("insert: %w", email)), apperr.ErrDuplicateEmail)

	otherUnique := &pq.Error{Code: "23505", Constraint: "users_pkey"}
	err := translateInsertError(otherUnique)
	assert.NotErrorIs(t, err, apperr.ErrDuplicateEmail)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	down := errors.New("connection reset")
	err = translateInsertError(down)
	assert.ErrorIs(t, err, down)
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
}
