// Package platform implements host-platform helpers consumed by the domain
// model, such as resolving the display domain of a login URI.
package platform

import (
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// DomainResolver implements domain.PlatformUtils using the public suffix list.
type DomainResolver struct{}

func NewDomainResolver() *DomainResolver {
	return &DomainResolver{}
}

// GetDomain returns the registrable domain (eTLD+1) of uri:
// "https://accounts.google.co.uk/x" -> "google.co.uk".
//
// URIs without a scheme are treated as host names. IP addresses and
// "localhost" are returned as-is. Anything without a host yields "".
func (r *DomainResolver) GetDomain(uri string) string {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return ""
	}
	if !strings.Contains(uri, "://") {
		uri = "http://" + uri
	}

	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return ""
	}
	if host == "localhost" || net.ParseIP(host) != nil {
		return host
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		// host is itself a public suffix ("co.uk") or malformed
		return host
	}

	return domain
}
