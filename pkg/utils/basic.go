package utils

import (
	"encoding/base64"
	"strings"
)

// ParseBasicAuth decodes an "Authorization: Basic <base64>" header value.
// A missing or malformed header reports absent credentials, not an error.
func ParseBasicAuth(header string) (user, pass string, ok bool) {
	if !strings.HasPrefix(header, "Basic ") {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, "Basic "))
	if err != nil {
		return "", "", false
	}

	user, pass, found := strings.Cut(string(decoded), ":")
	if !found {
		return "", "", false
	}

	return user, pass, true
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value, or "" when the header does not carry one.
func ParseBearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
