package validator

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?~` + "`" + `]`)

	// Common weak passwords - curated list of frequently compromised passwords
	commonPasswords = map[string]bool{
		"password":    true,
		"123456":      true,
		"password123": true,
		"admin":       true,
		"qwerty":      true,
		"abc123":      true,
		"letmein":     true,
		"welcome":     true,
		"12345678":    true,
		"123456789":   true,
		"1q2w3e4r":    true,
		"qwerty123":   true,
		"password1":   true,
		"password!":   true,
		"Password1":   true,
		"Password123": true,
		"admin123":    true,
		"root":        true,
		"guest":       true,
		"test":        true,
		"secret":      true,
		"trustno1":    true,
		"iloveyou":    true,
		"dragon":      true,
		"sunshine":    true,
		"monkey":      true,
	}
)

// bcryptMaxBytes is bcrypt's input limit; longer passwords are rejected
// by the hasher.
const bcryptMaxBytes = 72

// PasswordPolicy describes the composition requirements for new passwords.
type PasswordPolicy struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireDigit     bool
	RequireSpecial   bool
}

// DefaultPasswordPolicy returns the account password policy:
// at least 8 characters with one digit, one uppercase letter and one
// non-alphanumeric character. MaxLength is capped at 72 because bcrypt
// only hashes the first 72 bytes.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:        8,
		MaxLength:        bcryptMaxBytes,
		RequireUppercase: true,
		RequireDigit:     true,
		RequireSpecial:   true,
	}
}

// PasswordRules expands a policy into discrete rules so each violated
// requirement is reported as its own validation error.
func PasswordRules(field, value string, policy PasswordPolicy) []Rule {
	rules := []Rule{
		MinLen(field, value, policy.MinLength),
	}
	if policy.MaxLength > 0 {
		rules = append(rules, MaxLen(field, value, policy.MaxLength))
	}
	// MaxLen counts runes; bcrypt counts bytes, so multibyte passwords
	// need an explicit byte cap regardless of the configured MaxLength.
	rules = append(rules, PasswordMaxBytes(field, value))
	if policy.RequireUppercase {
		rules = append(rules, PasswordUppercase(field, value))
	}
	if policy.RequireDigit {
		rules = append(rules, PasswordDigit(field, value))
	}
	if policy.RequireSpecial {
		rules = append(rules, PasswordSpecialChar(field, value))
	}
	return rules
}

func PasswordMaxBytes(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= bcryptMaxBytes
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("password must be at most %d bytes long", bcryptMaxBytes),
		},
	}
}

func PasswordUppercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return uppercaseRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "password must contain at least one uppercase letter",
		},
	}
}

func PasswordLowercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return lowercaseRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "password must contain at least one lowercase letter",
		},
	}
}

func PasswordDigit(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return digitRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "password must contain at least one digit",
		},
	}
}

func PasswordSpecialChar(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return specialCharRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "password must contain at least one special character",
		},
	}
}

func NotCommonPassword(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !commonPasswords[strings.ToLower(value)]
		},
		Error: ValidationError{
			Field:   field,
			Message: "password is too common, please choose a different one",
		},
	}
}
