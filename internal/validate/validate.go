// Package validate implements the input-sanitization rules applied at the
// schema boundary: dangerous-markup rejection, credential format rules,
// SQL LIKE escaping, fixed-point money bounds and pagination limits.
// Violations surface as validation_error app errors; values are rejected,
// never silently rewritten.
package validate

import (
	"regexp"
	"strings"

	domainerrors "wishlist/internal/domain/errors"

	"github.com/shopspring/decimal"
)

const (
	UsernameMinLen = 3
	UsernameMaxLen = 50
	PasswordMinLen = 8
	PasswordMaxLen = 128

	TitleMaxLen       = 200
	DescriptionMaxLen = 1000
	SearchMaxLen      = 100

	MaxSkip  = 10000
	MaxLimit = 50

	moneyMaxDigits     = 12
	moneyMaxFractional = 2
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	emailPattern    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	letterPattern   = regexp.MustCompile(`[A-Za-z]`)
	digitPattern    = regexp.MustCompile(`[0-9]`)

	// Case-insensitive substrings that mark a value as executable content.
	dangerousMarkup = []string{"<script", "javascript:", "onerror=", "onclick="}
)

// Username checks length 3-50 and charset [A-Za-z0-9_-].
func Username(s string) error {
	if len(s) < UsernameMinLen || len(s) > UsernameMaxLen {
		return domainerrors.ErrValidationFailed.WithMessage("Username must be between 3 and 50 characters long")
	}

	if !usernamePattern.MatchString(s) {
		return domainerrors.ErrValidationFailed.WithMessage("Username must contain only letters, numbers, dashes and underscores")
	}

	return nil
}

// Email checks basic address shape and length.
func Email(s string) error {
	if s == "" || len(s) > 100 {
		return domainerrors.ErrValidationFailed.WithMessage("Email must be between 1 and 100 characters long")
	}

	if !emailPattern.MatchString(s) {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid email format")
	}

	return nil
}

// PasswordComplexity checks length 8-128 with at least one letter and one digit.
func PasswordComplexity(s string) error {
	if len(s) < PasswordMinLen || len(s) > PasswordMaxLen {
		return domainerrors.ErrValidationFailed.WithMessage("Password must be between 8 and 128 characters long")
	}

	if !letterPattern.MatchString(s) {
		return domainerrors.ErrValidationFailed.WithMessage("Password must contain at least one letter")
	}

	if !digitPattern.MatchString(s) {
		return domainerrors.ErrValidationFailed.WithMessage("Password must contain at least one digit")
	}

	return nil
}

// Markup rejects values containing script-like content and otherwise returns
// the value trimmed of surrounding whitespace. The content is never entity
// encoded or rewritten; a dangerous value fails the whole request.
func Markup(s string) (string, error) {
	lower := strings.ToLower(s)
	for _, pattern := range dangerousMarkup {
		if strings.Contains(lower, pattern) {
			return "", domainerrors.ErrValidationFailed.WithMessage("HTML/JS content is not allowed")
		}
	}

	return strings.TrimSpace(s), nil
}

// EscapeLikePattern escapes SQL LIKE metacharacters so user-supplied search
// text matches only literally. Backslash is escaped first; doing it in any
// other order would double-escape the backslashes the later substitutions
// insert.
func EscapeLikePattern(s string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`%`, `\%`,
		`_`, `\_`,
		`[`, `\[`,
		`]`, `\]`,
	)

	return replacer.Replace(s)
}

// Money checks that a price is non-negative, has at most 12 total digits and
// at most 2 fractional digits. Prices are exact fixed-point decimals; binary
// floating point never touches this field.
func Money(d decimal.Decimal) error {
	if d.IsNegative() {
		return domainerrors.ErrValidationFailed.WithMessage("Price must not be negative")
	}

	if d.Exponent() < -moneyMaxFractional {
		return domainerrors.ErrValidationFailed.WithMessage("Price must have at most 2 decimal places")
	}

	digits := len(strings.ReplaceAll(strings.TrimLeft(d.Abs().String(), "0"), ".", ""))
	if digits > moneyMaxDigits {
		return domainerrors.ErrValidationFailed.WithMessage("Price must have at most 12 digits in total")
	}

	return nil
}

// Pagination checks the skip/limit window. The bounds exist purely to cap
// the worst-case query cost of a single request.
func Pagination(skip, limit int) error {
	if skip < 0 || skip > MaxSkip {
		return domainerrors.ErrValidationFailed.WithMessage("Skip must be between 0 and 10000")
	}

	if limit < 1 || limit > MaxLimit {
		return domainerrors.ErrValidationFailed.WithMessage("Limit must be between 1 and 50")
	}

	return nil
}

// SearchTerm bounds the length of a search string.
func SearchTerm(s string) error {
	if len(s) > SearchMaxLen {
		return domainerrors.ErrValidationFailed.WithMessage("Search term must be no more than 100 characters long")
	}

	return nil
}

// Title checks a wish title after markup screening.
func Title(s string) error {
	if s == "" || len(s) > TitleMaxLen {
		return domainerrors.ErrValidationFailed.WithMessage("Title must be between 1 and 200 characters long")
	}

	return nil
}

// Description checks an optional wish description.
func Description(s string) error {
	if len(s) > DescriptionMaxLen {
		return domainerrors.ErrValidationFailed.WithMessage("Description must be no more than 1000 characters long")
	}

	return nil
}
