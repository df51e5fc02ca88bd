// pkg/crypto/redact.go

package crypto

import "strings"

// Redact masks a generated password for logging, keeping only its rune
// count visible.
func Redact(s string) string {
	if s == "" {
		return "(empty)"
	}
	return strings.Repeat("*", len([]rune(s)))
}
