package reference

import (
	"fmt"
	"regexp"

	"github.com/alpenbill/qrbill/internal/entity"
)

var (
	qrrPattern  = regexp.MustCompile(`^\d{16,27}$`)
	scorPattern = regexp.MustCompile(`^RF\d{2}[A-Z0-9]{1,19}$`)
)

// scorHeaderLen covers "RF" plus the two check digits.
const scorHeaderLen = 4

// Validate checks a reference string against the grammar and checksum of its
// declared type. NON always passes, the reference is ignored.
func Validate(ref string, t entity.ReferenceType) error {
	switch t {
	case entity.ReferenceTypeNON:
		return nil

	case entity.ReferenceTypeQRR:
		if ref == "" {
			return fmt.Errorf("%w: QRR reference is empty", entity.ErrMissingReference)
		}

		if !qrrPattern.MatchString(ref) {
			return fmt.Errorf("%w: QRR reference must be 16 to 27 digits, got %q", entity.ErrReferenceFormat, ref)
		}

		if !Modulo10Check(ref) {
			return fmt.Errorf("%w: QRR reference %q fails the modulo-10 check", entity.ErrReferenceChecksum, ref)
		}

		return nil

	case entity.ReferenceTypeSCOR:
		if ref == "" {
			return fmt.Errorf("%w: SCOR reference is empty", entity.ErrMissingReference)
		}

		if !scorPattern.MatchString(ref) {
			return fmt.Errorf("%w: SCOR reference must match RF + 2 digits + 1-19 alphanumerics, got %q",
				entity.ErrReferenceFormat, ref)
		}

		want := ISO11649CheckDigits("RF00" + ref[scorHeaderLen:])
		if ref[2:scorHeaderLen] != want {
			return fmt.Errorf("%w: SCOR reference %q check digits are %q, want %q",
				entity.ErrReferenceChecksum, ref, ref[2:scorHeaderLen], want)
		}

		return nil

	default:
		return fmt.Errorf("%w: unknown reference type %q", entity.ErrInvalidArgument, t)
	}
}
