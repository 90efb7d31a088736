package phone

import "strings"

const last10 = 10

// Normalize strips everything but digits from a phone number, so that
// "+1 845-376-2437" and "18453762437" compare equal after trimming.
func Normalize(number string) string {
	var builder strings.Builder

	for _, r := range number {
		if r >= '0' && r <= '9' {
			builder.WriteRune(r)
		}
	}

	return builder.String()
}

// Last10 returns the last ten digits of a number, tolerating the +1 country
// code and formatting variance between stored and dialed numbers.
func Last10(number string) string {
	digits := Normalize(number)

	if len(digits) <= last10 {
		return digits
	}

	return digits[len(digits)-last10:]
}

// Matches reports whether two phone numbers identify the same line: exact
// match first, then digits-only, then last-ten-digits comparison.
func Matches(a, b string) bool {
	if a == "" || b == "" {
		return false
	}

	if a == b {
		return true
	}

	if Normalize(a) == Normalize(b) {
		return true
	}

	return Last10(a) == Last10(b)
}
