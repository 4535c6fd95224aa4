package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`duplicate key value violates unique constraint "uni_users_email"`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
}

func TestIsUniqueViolationOn(t *testing.T) {
	mobileErr := errors.New(`ERROR: duplicate key value violates unique constraint "uni_users_mobile_number" (SQLSTATE 23505)`)
	emailErr := errors.New(`ERROR: duplicate key value violates unique constraint "uni_users_email" (SQLSTATE 23505)`)

	assert.True(t, isUniqueViolationOn(mobileErr, "mobile"))
	assert.False(t, isUniqueViolationOn(emailErr, "mobile"))
	assert.False(t, isUniqueViolationOn(errors.New("connection refused"), "mobile"))
}
