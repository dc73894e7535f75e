// Package phone normalizes Ethiopian mobile numbers into the canonical
// +251XXXXXXXXX form shared by submission and duplicate-check paths.
package phone

import "strings"

// InvalidError describes why a raw phone number was rejected.
type InvalidError struct {
	Reason string
}

func (e *InvalidError) Error() string {
	return e.Reason
}

// Rejection reasons. The wording is part of the public API surface: the
// check-phone endpoint returns them verbatim.
const (
	reasonLength = "Invalid phone number length. Must be 9 digits (e.g., 911223344)."
	reasonPrefix = "Invalid phone number. Must start with 9 or 7 (e.g., 09... or 07...)."
	reasonDigits = "Phone number must contain only digits."
)

// Normalize converts a raw phone string into canonical +251 form.
//
// The steps are order-sensitive: a single leading zero is stripped, the
// +251 country code is prepended when absent, and the result must be 13
// characters of which the subscriber part is 9 digits starting with 9 or 7.
// Normalize is idempotent over its own output.
func Normalize(raw string) (string, error) {
	v := strings.TrimSpace(raw)

	if strings.HasPrefix(v, "0") {
		v = v[1:]
	}
	if !strings.HasPrefix(v, "+251") {
		v = "+251" + v
	}

	if len(v) != 13 {
		return "", &InvalidError{Reason: reasonLength}
	}
	if v[4] != '9' && v[4] != '7' {
		return "", &InvalidError{Reason: reasonPrefix}
	}
	for _, c := range v[1:] {
		if c < '0' || c > '9' {
			return "", &InvalidError{Reason: reasonDigits}
		}
	}
	return v, nil
}
