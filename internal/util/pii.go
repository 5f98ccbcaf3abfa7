// Package util provides small shared helpers with no domain knowledge.
package util

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	// Dot-delimited base64url triplets of JWT-ish length.
	tokenPattern = regexp.MustCompile(`\b[A-Za-z0-9_-]{20,}\.[A-Za-z0-9_-]{20,}\.[A-Za-z0-9_-]{20,}\b`)
)

// tokenPlaceholder replaces anything that looks like a signed token.
const tokenPlaceholder = "***JWT_TOKEN***"

// MaskEmail masks an email address keeping only the first local-part
// character and the domain: test@example.com -> t***@example.com.
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || email == "" {
		return email
	}

	if len(local) <= 1 {
		return local + "***@" + domain
	}

	return local[:1] + "***@" + domain
}

// MaskToken masks a token, keeping only the last 4 characters.
func MaskToken(token string) string {
	if len(token) <= 4 {
		return "***"
	}

	return "***" + token[len(token)-4:]
}

// MaskPII masks email addresses and token-shaped substrings in free text.
// Every string bound for logs or client-facing error details passes through
// here first.
func MaskPII(text string) string {
	text = emailPattern.ReplaceAllStringFunc(text, MaskEmail)

	return tokenPattern.ReplaceAllString(text, tokenPlaceholder)
}
