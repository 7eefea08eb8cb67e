package ops

import (
	"strings"
	"testing"
)

func TestGeneratePasswordLengthAndCategories(t *testing.T) {
	password, err := generatePassword(25, false)
	if err != nil {
		t.Fatalf("generatePassword: %v", err)
	}
	if len(password) != 25 {
		t.Fatalf("expected length 25, got %d", len(password))
	}
	for _, forbidden := range []string{"O", "0", "I", "l", "1"} {
		if strings.Contains(password, forbidden) {
			t.Errorf("password %q contains visually similar character %q", password, forbidden)
		}
	}
}

func TestGeneratePasswordNoSymbols(t *testing.T) {
	password, err := generatePassword(40, true)
	if err != nil {
		t.Fatalf("generatePassword: %v", err)
	}
	for _, r := range password {
		if strings.ContainsRune(symbolAlphabet, r) {
			t.Errorf("password %q contains a symbol despite NoSymbols", password)
		}
	}
}

func TestReplaceFirstLine(t *testing.T) {
	got := replaceFirstLine("old\nnote one\nnote two", "new")
	want := "new\nnote one\nnote two"
	if got != want {
		t.Errorf("replaceFirstLine = %q, want %q", got, want)
	}

	got = replaceFirstLine("old-only", "new")
	if got != "new" {
		t.Errorf("replaceFirstLine single line = %q, want %q", got, "new")
	}
}
