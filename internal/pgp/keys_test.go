package pgp

import "testing"

func TestSplitUID(t *testing.T) {
	cases := []struct {
		uid, name, email string
	}{
		{"Alice Smith <alice@example.com>", "Alice Smith", "alice@example.com"},
		{"noemail", "noemail", ""},
		{"Bob <bob@example.com> (comment)", "Bob", "bob@example.com"},
	}
	for _, tc := range cases {
		name, email := splitUID(tc.uid)
		if name != tc.name || email != tc.email {
			t.Errorf("splitUID(%q) = (%q, %q), want (%q, %q)", tc.uid, name, email, tc.name, tc.email)
		}
	}
}
