package ivr

import (
	"errors"
	"strconv"
	"strings"
)

var ErrCountOutOfRange = errors.New("count out of range")

// ParseCount parses a gathered digit string as a count in [1, max]. The
// provider strips the finish key from Digits, but a trailing # is tolerated
// anyway. Anything non-numeric or out of range is rejected so it never
// reaches the store.
func ParseCount(digits string, max int) (int, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(digits), "#")

	count, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, ErrCountOutOfRange
	}

	if count < 1 || count > max {
		return 0, ErrCountOutOfRange
	}

	return count, nil
}
