package validator

import "testing"

func TestValidateKeySegment(t *testing.T) {
	cases := map[string]bool{
		"prod":       true,
		"build-2024": true,
		"qa.eu_west": true,
		"":           false,
		".":          false,
		"..":         false,
		"a/b":        false,
		" padded ":   false,
		"with space": false,
		"évolution":  false,
	}
	for in, want := range cases {
		if got := ValidateKeySegment(in); got != want {
			t.Errorf("ValidateKeySegment(%q) = %v, want %v", in, got, want)
		}
	}
}
