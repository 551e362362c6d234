// Package reference implements generation and validation of QR-bill payment
// references (QRR, SCOR) including their checksum algorithms.
package reference

import (
	"fmt"
)

// Modulo10Check reports whether a digit string passes the Luhn-style modulo-10
// check. The whole candidate is checked; the check digit is expected to be
// embedded in the string already, not appended separately. Positions are
// counted 0-based from the least significant end; even positions are doubled
// and folded back to a single digit. An empty string sums to zero and passes
// vacuously; the reference grammars in Validate reject empty candidates before
// this check runs, so direct callers must length-check their input themselves.
func Modulo10Check(digits string) bool {
	sum := 0

	for i := 0; i < len(digits); i++ {
		c := digits[len(digits)-1-i]
		if c < '0' || c > '9' {
			return false
		}

		d := int(c - '0')

		if i%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}

		sum += d
	}

	return sum%10 == 0
}

// ISO11649CheckDigits computes the two ISO 7064 MOD 97-10 check digits for an
// alphanumeric reference, per the ISO 11649 creditor-reference standard. The
// caller passes the candidate with its two check-digit positions set to "00";
// the string is reduced left to right as given. Letters map to two-digit codes
// (A=10 .. Z=35), digits pass through.
func ISO11649CheckDigits(reference string) string {
	r := 0

	for i := 0; i < len(reference); i++ {
		switch c := reference[i]; {
		case c >= '0' && c <= '9':
			r = (r*10 + int(c-'0')) % 97
		case c >= 'A' && c <= 'Z':
			n := int(c-'A') + 10
			r = (r*10 + n/10) % 97
			r = (r*10 + n%10) % 97
		}
	}

	check := 98 - ((r * 100) % 97)

	return fmt.Sprintf("%02d", check)
}
