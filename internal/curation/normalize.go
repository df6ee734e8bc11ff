package curation

import (
	"fmt"
	"net"
	"net/url"
	"path"
	"sort"
	"strings"
)

// NormalizeURL returns the canonical representation of a URL string. Every
// content item is stored under its canonical URL, so the rules are strict and
// opinionated to make the one-item-per-URL invariant meaningful:
//   - Require an absolute http(s) URL with a host
//   - Lower-case the scheme and host
//   - Ensure path is present; empty path becomes "/"
//   - Clean the path (resolve dot-segments, collapse duplicate slashes)
//   - Remove a trailing slash (except for the root path "/")
//   - Drop default ports (http:80, https:443), keep non-default ports
//   - Sort query parameters by key and by value for stable ordering
//   - Remove the fragment
func NormalizeURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("could not parse URL: %w", err)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("URL %q is not an absolute http(s) URL", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("URL %q has no host", raw)
	}

	// if no path, make it "/"
	if u.Path == "" {
		u.Path = "/"
	}

	// clean path (removes dot-segments, duplicate slashes)
	cleaned := path.Clean(u.Path)
	if !strings.HasPrefix(cleaned, "/") {
		cleaned = "/" + cleaned
	}
	u.Path = cleaned

	// remove trailing slash (but not for root)
	if u.Path != "/" && strings.HasSuffix(u.Path, "/") {
		u.Path = strings.TrimRight(u.Path, "/")
	}

	// lowercase host and drop default ports
	host := strings.ToLower(u.Host)
	port := ""
	if ph, pp, err := net.SplitHostPort(host); err == nil {
		host, port = ph, pp
	} // else: host without explicit port or IPv6 without port
	if port != "" {
		if (u.Scheme == "http" && port == "80") || (u.Scheme == "https" && port == "443") {
			u.Host = host
		} else {
			u.Host = net.JoinHostPort(host, port)
		}
	} else {
		u.Host = host
	}

	// sort query params (keys and values)
	if u.RawQuery != "" {
		q := u.Query()
		for k := range q {
			sort.Strings(q[k])
		}
		// url.Values.Encode() sorts keys lexicographically
		u.RawQuery = q.Encode()
	}

	u.Fragment = ""

	return u.String(), nil
}

// DomainName extracts the normalized hostname from an already-normalized URL.
func DomainName(normalizedURL string) (string, error) {
	u, err := url.Parse(normalizedURL)
	if err != nil {
		return "", fmt.Errorf("could not parse URL: %w", err)
	}

	host := u.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	if host == "" {
		return "", fmt.Errorf("URL %q has no host", normalizedURL)
	}

	return host, nil
}
