package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginPolicy_Resolve(t *testing.T) {
	policy := NewOriginPolicy("https://app.adhub.test/", []string{"https://staging.adhub.test", "http://localhost:3000", "not a url"})

	tests := []struct {
		name     string
		origin   string
		expected string
	}{
		{name: "Fallback itself", origin: "https://app.adhub.test", expected: "https://app.adhub.test"},
		{name: "Allowed origin", origin: "https://staging.adhub.test", expected: "https://staging.adhub.test"},
		{name: "Allowed with path", origin: "http://localhost:3000/settings", expected: "http://localhost:3000"},
		{name: "Case insensitive host", origin: "https://Staging.AdHub.test", expected: "https://staging.adhub.test"},
		{name: "Foreign origin", origin: "https://evil.test", expected: "https://app.adhub.test"},
		{name: "Scheme downgrade", origin: "http://staging.adhub.test", expected: "https://app.adhub.test"},
		{name: "Javascript", origin: "javascript:alert(1)", expected: "https://app.adhub.test"},
		{name: "Empty", origin: "", expected: "https://app.adhub.test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, policy.Resolve(tt.origin))
		})
	}
	assert.Equal(t, "https://app.adhub.test", policy.Fallback())
}
