package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kennycyb/pars/internal/store"
)

func TestSecretZero(t *testing.T) {
	s := store.NewSecret([]byte("hunter2"))
	assert.Equal(t, "hunter2", s.String())

	s.Zero()
	assert.Equal(t, "", s.String())

	var nilSecret *store.Secret
	assert.NotPanics(t, func() { nilSecret.Zero() })
	assert.Equal(t, "", nilSecret.String())
	assert.Nil(t, nilSecret.Expose())
}
