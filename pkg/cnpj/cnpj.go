// Package cnpj normalizes Brazilian company tax identifiers for comparison.
package cnpj

import "strings"

// Normalize strips every non-digit rune, so "12.345.678/0001-99" and
// "12345678000199" compare equal. Both sides of an authorization check must go
// through Normalize; a raw comparison would turn formatting into a denial.
func Normalize(raw string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
}
