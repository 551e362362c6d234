package reference

import (
	"math/rand"

	"github.com/gofrs/uuid/v5"
)

// RandomSource supplies the randomness the generator draws from. Tests inject
// a deterministic source to pin exact generated values.
type RandomSource interface {
	// Digit returns a decimal digit in [0, 9].
	Digit() int
	// UUID returns a fresh random identifier.
	UUID() uuid.UUID
}

type systemSource struct{}

func (systemSource) Digit() int {
	return rand.Intn(10)
}

func (systemSource) UUID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// SystemSource returns the process-wide random source used outside tests.
func SystemSource() RandomSource {
	return systemSource{}
}
