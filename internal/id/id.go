// Package id generates identifiers for drill sessions.
package id

import "crypto/rand"

const (
	alphabet     = "abcdefghijklmnopqrstuvwxyz0123456789"
	prefix       = "drill-"
	randomLength = 12
)

// GenerateID returns a session identifier such as "drill-k3v9x0a1b2c4".
func GenerateID() string {
	b := make([]byte, randomLength)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	for i := range b {
		b[i] = alphabet[b[i]%byte(len(alphabet))]
	}
	return prefix + string(b)
}
