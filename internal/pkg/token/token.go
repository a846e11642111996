// Package token generates unguessable capability strings, used for
// self-service cancellation links.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const byteLength = 24

func NewCancelToken() (string, error) {
	buf := make([]byte, byteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate cancel token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
