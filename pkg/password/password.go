// Package password provides the password strength rules shared by every
// form that creates or changes a credential.
package password

import "unicode"

// MaxScore is the number of criteria a password can satisfy.
const MaxScore = 5

// Criteria is the structured result of evaluating a password. Each flag
// corresponds to one strength hint shown to the user.
type Criteria struct {
	Length  bool // at least 8 characters
	Upper   bool // at least one uppercase letter
	Lower   bool // at least one lowercase letter
	Number  bool // at least one digit
	Special bool // at least one non-alphanumeric character
	Score   int  // number of satisfied criteria, 0..MaxScore
}

// Evaluate scores a password against the strength criteria.
func Evaluate(pw string) Criteria {
	c := Criteria{Length: len(pw) >= 8}

	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			c.Upper = true
		case unicode.IsLower(r):
			c.Lower = true
		case unicode.IsDigit(r):
			c.Number = true
		default:
			c.Special = true
		}
	}

	for _, ok := range []bool{c.Length, c.Upper, c.Lower, c.Number, c.Special} {
		if ok {
			c.Score++
		}
	}
	return c
}

// IsStrong reports whether the password satisfies every criterion.
func IsStrong(pw string) bool {
	return Evaluate(pw).Score == MaxScore
}
