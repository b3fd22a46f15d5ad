package utils

import (
	"net/url"
	"strings"
)

// OriginPolicy decides where the browser may be sent back to. Anything not on
// the allow-list resolves to the fallback.
type OriginPolicy struct {
	fallback string
	allowed  map[string]struct{}
}

func NewOriginPolicy(fallback string, allowed []string) *OriginPolicy {
	p := &OriginPolicy{
		fallback: normalizeOrigin(fallback),
		allowed:  make(map[string]struct{}, len(allowed)+1),
	}
	if p.fallback != "" {
		p.allowed[p.fallback] = struct{}{}
	}
	for _, origin := range allowed {
		if o := normalizeOrigin(origin); o != "" {
			p.allowed[o] = struct{}{}
		}
	}
	return p
}

func (p *OriginPolicy) Resolve(origin string) string {
	o := normalizeOrigin(origin)
	if _, ok := p.allowed[o]; ok && o != "" {
		return o
	}
	return p.fallback
}

func (p *OriginPolicy) Fallback() string {
	return p.fallback
}

// normalizeOrigin reduces a URL to scheme://host[:port].
func normalizeOrigin(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ""
	}
	return strings.ToLower(u.Scheme + "://" + u.Host)
}
