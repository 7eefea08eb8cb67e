package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kennycyb/pars/internal/ops"
	"github.com/kennycyb/pars/internal/store"
)

func TestGenerateRejectsInPlaceAndForceTogether(t *testing.T) {
	root := t.TempDir()
	c, _, _ := newTestContext(t, root)

	_, err := c.Generate("email/work", ops.GenerateOptions{InPlace: true, Force: true})
	require.Error(t, err)
	assert.Equal(t, store.KindInvalidFlags, store.KindOf(err))
}
