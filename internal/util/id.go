package util

import "crypto/rand"

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewRequestID returns an 8-character alphanumeric string using
// cryptographic randomness. It correlates the log lines of one plan
// submission; it is never sent to the service.
func NewRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return "unknown"
	}

	for i := range bytes {
		bytes[i] = alphanumeric[int(bytes[i])%len(alphanumeric)]
	}

	return string(bytes)
}
