package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "categories_name_key"}
	assert.True(t, isUniqueViolation(pgErr))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert category: %w", pgErr)))

	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"})) // FK violation
	assert.False(t, isUniqueViolation(errors.New("conexión rechazada")))
}

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, nullIfEmpty(""))
	got := nullIfEmpty("abc")
	if assert.NotNil(t, got) {
		assert.Equal(t, "abc", *got)
	}

	assert.Equal(t, "", derefOrEmpty(nil))
	assert.Equal(t, "abc", derefOrEmpty(got))
}
