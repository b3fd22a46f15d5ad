package domainservice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/adhub/internal/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		wantErr  bool
	}{
		{name: "Mixed case with slash", raw: "Example.COM/", expected: "example.com"},
		{name: "Full URL", raw: "  https://www.My-Site.pt/path?q=1#top ", expected: "my-site.pt"},
		{name: "Trailing dot", raw: "example.io.", expected: "example.io"},
		{name: "Bare label", raw: "mysite", expected: "mysite"},
		{name: "Multi-label TLD", raw: "shop.co.uk", expected: "shop.co.uk"},
		{name: "Empty", raw: "   ", wantErr: true},
		{name: "Only scheme", raw: "https://", wantErr: true},
		{name: "Space inside", raw: "my site.com", wantErr: true},
		{name: "Underscore", raw: "my_site.com", wantErr: true},
		{name: "Leading hyphen", raw: "-site.com", wantErr: true},
		{name: "Trailing hyphen", raw: "site-.com", wantErr: true},
		{name: "Empty label", raw: "site..com", wantErr: true},
		{name: "Label too long", raw: strings.Repeat("a", 64) + ".com", wantErr: true},
		{name: "Name too long", raw: strings.Repeat("abcdefghi.", 26) + "com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, err := Normalize(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedDomain)
				assert.ErrorIs(t, err, domain.ErrMalformedInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, name)
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		sld  string
		tld  string
	}{
		{name: "example.com", sld: "example", tld: "com"},
		{name: "mysite", sld: "mysite", tld: "com"},
		{name: "shop.co.uk", sld: "shop", tld: "co.uk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sld, tld := Split(tt.name)
			assert.Equal(t, tt.sld, sld)
			assert.Equal(t, tt.tld, tld)
		})
	}
}
