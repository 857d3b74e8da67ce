package service

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 128
	minUsernameLength = 2
	maxUsernameLength = 50

	passwordSymbols = "!@#$%^&*(),.?\":{}|<>_-+=[]\\;'/`~"
)

var (
	ErrEmailIsNotValid = fmt.Errorf("%w: email address is not valid", ErrInvalidDataProvided)

	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least %d characters long",
		ErrInvalidDataProvided, minPasswordLength)
	ErrPasswordTooLong = fmt.Errorf("%w: password must be at most %d characters long",
		ErrInvalidDataProvided, maxPasswordLength)
	ErrPasswordNoUppercase = fmt.Errorf("%w: password must contain at least one uppercase letter",
		ErrInvalidDataProvided)
	ErrPasswordNoLowercase = fmt.Errorf("%w: password must contain at least one lowercase letter",
		ErrInvalidDataProvided)
	ErrPasswordNoDigit = fmt.Errorf("%w: password must contain at least one digit",
		ErrInvalidDataProvided)
	ErrPasswordNoSymbol = fmt.Errorf("%w: password must contain at least one special character",
		ErrInvalidDataProvided)

	ErrUsernameLengthOutOfRange = fmt.Errorf("%w: username must be between %d and %d characters long",
		ErrInvalidDataProvided, minUsernameLength, maxUsernameLength)
)

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrEmailIsNotValid
	}

	return nil
}

// validatePassword checks the password policy one rule at a time so the
// caller gets the first violated rule as a distinct error.
func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if utf8.RuneCountInString(password) > maxPasswordLength {
		return ErrPasswordTooLong
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}

	switch {
	case !hasUpper:
		return ErrPasswordNoUppercase
	case !hasLower:
		return ErrPasswordNoLowercase
	case !hasDigit:
		return ErrPasswordNoDigit
	case !hasSymbol:
		return ErrPasswordNoSymbol
	}

	return nil
}

func validateUsername(username string) error {
	if length := utf8.RuneCountInString(username); length < minUsernameLength || length > maxUsernameLength {
		return ErrUsernameLengthOutOfRange
	}

	return nil
}
