package reference

import (
	"github.com/alpenbill/qrbill/internal/entity"
)

// DetermineType returns the caller's preferred reference type when it is one
// of the recognized variants and falls back to QRR otherwise. The fallback is
// an intentional default, not an error; no other context (currency, debtor
// country) influences the choice.
func DetermineType(preferred entity.ReferenceType) entity.ReferenceType {
	if preferred.IsValid() {
		return preferred
	}

	return entity.ReferenceTypeQRR
}
