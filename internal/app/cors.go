package app

import "strings"

// extractOriginHost strips the scheme and port from an Origin header value.
func extractOriginHost(origin string) string {
	host := origin
	if idx := strings.Index(host, "://"); idx != -1 {
		host = host[idx+3:]
	}
	if idx := strings.Index(host, ":"); idx != -1 {
		host = host[:idx]
	}
	return host
}

// matchOriginPattern matches a host against a configured origin pattern.
// A leading "*." wildcard matches the bare domain and any subdomain.
func matchOriginPattern(pattern, host string) bool {
	if pattern == host {
		return true
	}
	if strings.HasPrefix(pattern, "*.") {
		base := pattern[2:]
		return host == base || strings.HasSuffix(host, "."+base)
	}
	return false
}
