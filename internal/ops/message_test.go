package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kennycyb/pars/internal/ops"
)

func TestCommitMessages(t *testing.T) {
	assert.Equal(t, "Init alice@example.com, bob@example.com", ops.InitMessage([]string{"alice@example.com", "bob@example.com"}).String())
	assert.Equal(t, "Generate password for email/work", ops.GenerateMessage("email/work").String())
	assert.Equal(t, "Update password for email/work", ops.UpdateMessage("email/work").String())
	assert.Equal(t, "Add password for email/work", ops.InsertMessage("email/work").String())
	assert.Equal(t, "Remove email/work", ops.RemoveMessage("email/work").String())
	assert.Equal(t, "Copy email/work to email/work2", ops.CopyMessage("email/work", "email/work2").String())
	assert.Equal(t, "Rename email/work to email/work2", ops.RenameMessage("email/work", "email/work2").String())
}
