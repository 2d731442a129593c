package faleproxy

import (
	"net/url"
	"strings"
)

// ValidateURL checks that raw is a well-formed absolute URL with both a
// scheme and a host. It never touches the network.
func ValidateURL(raw string) (*url.URL, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, Errorf(EINVALID, "Invalid URL")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, Errorf(EINVALID, "Invalid URL")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, Errorf(EINVALID, "Invalid URL")
	}

	return u, nil
}
