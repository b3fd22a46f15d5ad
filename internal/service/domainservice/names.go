package domainservice

import (
	"fmt"
	"strings"

	"github.com/GlebRadaev/adhub/internal/domain"
)

var ErrMalformedDomain = fmt.Errorf("%w: invalid domain name", domain.ErrMalformedInput)

const (
	defaultTLD     = "com"
	maxLabelLength = 63
	maxNameLength  = 253
)

// Normalize turns user input such as "https://www.Example.COM/path" into a
// bare lowercase domain name.
func Normalize(raw string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = strings.TrimPrefix(name, "http://")
	name = strings.TrimPrefix(name, "https://")
	name = strings.TrimPrefix(name, "www.")
	if i := strings.IndexAny(name, "/?#"); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimRight(name, ".")

	if name == "" || len(name) > maxNameLength {
		return "", ErrMalformedDomain
	}
	for _, label := range strings.Split(name, ".") {
		if !validLabel(label) {
			return "", ErrMalformedDomain
		}
	}
	return name, nil
}

func validLabel(label string) bool {
	if label == "" || len(label) > maxLabelLength {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for _, r := range label {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-') {
			return false
		}
	}
	return true
}

// Split separates the first label from the rest. A name without a dot is
// treated as a .com name.
func Split(name string) (sld, tld string) {
	sld, tld, ok := strings.Cut(name, ".")
	if !ok {
		return name, defaultTLD
	}
	return sld, tld
}
