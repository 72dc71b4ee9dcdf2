package discovery

import (
	"testing"
)

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		files    []string
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			files:    []string{"login.test.js", "cart.test.js", "signup.ts"},
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard pattern matches suffix",
			files:    []string{"login.test.js", "cart.test.js", "signup.ts"},
			pattern:  "*.test.js",
			expected: 2,
		},
		{
			name:     "wildcard pattern matches substring",
			files:    []string{"login.test.js", "cart.test.js", "login-sso.ts", "signup.ts"},
			pattern:  "*login*",
			expected: 2,
		},
		{
			name:     "simple contains match",
			files:    []string{"login.test.js", "cart.test.js", "signup.ts"},
			pattern:  "cart",
			expected: 1,
		},
		{
			name:     "no matches",
			files:    []string{"login.test.js", "cart.test.js"},
			pattern:  "*checkout*",
			expected: 0,
		},
		{
			name:     "full path with wildcard",
			files:    []string{"/path/to/login.test.js", "/path/login/cart.test.js"},
			pattern:  "login*",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(tt.files, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, len(result))
			}
		})
	}
}

func TestFilter_FilterByName_EdgeCases(t *testing.T) {
	filter := NewFilter()

	t.Run("empty file list", func(t *testing.T) {
		result := filter.FilterByName([]string{}, "*.js")
		if len(result) != 0 {
			t.Errorf("expected empty result, got %d items", len(result))
		}
	})

	t.Run("parts must appear in order", func(t *testing.T) {
		files := []string{"user-login.test.js", "login-user.test.js"}
		result := filter.FilterByName(files, "*user*login*")
		if len(result) != 1 || result[0] != "user-login.test.js" {
			t.Errorf("expected only user-login.test.js, got %v", result)
		}
	})
}
