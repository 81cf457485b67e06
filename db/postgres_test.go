package db

import (
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestConnect_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	err := Connect()

	assert.Equal(t, true, errors.Is(err, ErrNoDatabaseURL))
}
