package qrcode_test

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kennycyb/pars/internal/qrcode"
)

func TestRenderFailsWithoutQrencode(t *testing.T) {
	if _, err := exec.LookPath("qrencode"); err == nil {
		t.Skip("qrencode is installed in this environment")
	}
	_, err := qrcode.Render("hunter2")
	assert.Error(t, err)
}

func TestRenderRoundTripsWithQrencode(t *testing.T) {
	if _, err := exec.LookPath("qrencode"); err != nil {
		t.Skip("requires qrencode to be installed")
	}
	out, err := qrcode.Render("hunter2")
	assert.NoError(t, err)
	assert.NotEmpty(t, out)
}
