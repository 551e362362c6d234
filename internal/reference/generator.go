package reference

import (
	"fmt"
	"strings"

	"github.com/alpenbill/qrbill/internal/entity"
)

const (
	qrrPrefix      = "00"
	qrrRandomLen   = 14
	scorPrefix     = "RF"
	scorPayloadLen = 19
)

// Generator produces fresh reference strings for invoices that have none
// stored yet. The generated value carries no computed check digit; Validate
// enforces checksums independently.
type Generator struct {
	rand RandomSource
}

func NewGenerator(rand RandomSource) *Generator {
	return &Generator{
		rand: rand,
	}
}

func (g *Generator) Generate(t entity.ReferenceType) (string, error) {
	switch t {
	case entity.ReferenceTypeQRR:
		var b strings.Builder

		b.WriteString(qrrPrefix)

		for i := 0; i < qrrRandomLen; i++ {
			b.WriteByte(byte('0' + g.rand.Digit()))
		}

		return b.String(), nil

	case entity.ReferenceTypeSCOR:
		id := strings.ToUpper(strings.ReplaceAll(g.rand.UUID().String(), "-", ""))

		return scorPrefix + id[:scorPayloadLen], nil

	case entity.ReferenceTypeNON:
		return "", nil

	default:
		return "", fmt.Errorf("%w: unknown reference type %q", entity.ErrInvalidArgument, t)
	}
}
