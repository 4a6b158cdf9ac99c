/*
Package validate contains the field-level validation rules for account request bodies.

Each check returns nil for a valid value or a FieldError naming the offending
field with a client-facing message. Handlers collect the non-nil results and
reject the request with the full list, so a client learns every problem at once.
*/
package validate

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"authapi/internal/pkg/errs"
)

const (
	// MinNameLength is the minimum display-name length in runes.
	MinNameLength = 2

	// MinPasswordLength is the minimum password length in runes.
	MinPasswordLength = 8

	// MaxFieldLength caps every stored string column.
	MaxFieldLength = 255
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// passwordSpecials is the set of characters counted as "special" by the
// password strength policy.
const passwordSpecials = `!@#$%^&*()[]{}|\:;"'<>,.?/~` + "`_+=-"

// Name checks a display name: at least MinNameLength runes, at most MaxFieldLength.
func Name(name string) *errs.FieldError {
	length := utf8.RuneCountInString(name)
	if length < MinNameLength {
		return &errs.FieldError{Field: "name", Message: "Name must be at least 2 characters"}
	}
	if length > MaxFieldLength {
		return &errs.FieldError{Field: "name", Message: "Name cannot be longer than 255 characters"}
	}
	return nil
}

// Email checks an email address for plausible format and length.
func Email(email string) *errs.FieldError {
	if len(email) > MaxFieldLength || !emailRegex.MatchString(email) {
		return &errs.FieldError{Field: "email", Message: "Invalid email address"}
	}
	return nil
}

// Bio checks a biography: 2 to 255 runes.
func Bio(bio string) *errs.FieldError {
	length := utf8.RuneCountInString(bio)
	if length < 2 {
		return &errs.FieldError{Field: "bio", Message: "Bio must be at least 2 characters"}
	}
	if length > MaxFieldLength {
		return &errs.FieldError{Field: "bio", Message: "Bio cannot be longer than 255 characters"}
	}
	return nil
}

// Image checks an avatar reference: an absolute http(s) URL of bounded length.
func Image(image string) *errs.FieldError {
	if len(image) > MaxFieldLength {
		return &errs.FieldError{Field: "image", Message: "Image URL cannot be longer than 255 characters"}
	}
	u, err := url.Parse(image)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return &errs.FieldError{Field: "image", Message: "Image must be a valid URL"}
	}
	return nil
}

// StrongPassword reports whether the password meets the strength policy:
// at least MinPasswordLength runes with at least one letter, one digit, and
// one special character.
func StrongPassword(password string) bool {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return false
	}

	var hasLetter, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		}
	}

	return hasLetter && hasDigit && hasSpecial
}

// Collect gathers the non-nil field errors into a slice suitable for
// errs.NewValidationError. It returns nil when every check passed.
func Collect(checks ...*errs.FieldError) []errs.FieldError {
	var fields []errs.FieldError
	for _, check := range checks {
		if check != nil {
			fields = append(fields, *check)
		}
	}
	return fields
}
