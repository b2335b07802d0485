package gmaps

import "github.com/google/uuid"

// MaxSessionTokenLength is the longest session token the service accepts.
const MaxSessionTokenLength = 36

// NewSessionToken generates a fresh autocomplete session token. Version 4
// UUIDs are what the service documentation recommends; any string of at
// most 36 URL-safe characters works.
func NewSessionToken() string {
	return uuid.NewString()
}

// ValidSessionToken reports whether the token is non-empty, at most 36
// characters, and uses only URL- and filename-safe base64 characters. The
// token is caller-opaque: the service only requires that it round-trips
// byte-for-byte across a session.
func ValidSessionToken(token string) bool {
	if token == "" || len(token) > MaxSessionTokenLength {
		return false
	}

	for _, c := range token {
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}

	return true
}
