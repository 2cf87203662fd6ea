package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const fipsLength = 5

var ErrInvalidFIPS = errors.New("invalid fips code")

// NormalizeFIPS turns a county FIPS code as found in report feeds ("1001",
// "1001.0", " 01001") into the zero padded five digit form used by boundary
// files.
func NormalizeFIPS(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, ".0")
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidFIPS)
	}

	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidFIPS, raw)
	}

	code := fmt.Sprintf("%0*d", fipsLength, n)
	if len(code) != fipsLength {
		return "", fmt.Errorf("%w: %q is not a county code", ErrInvalidFIPS, raw)
	}
	return code, nil
}
