package reference_test

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/alpenbill/qrbill/internal/entity"
	"github.com/alpenbill/qrbill/internal/reference"
)

type fakeSource struct {
	digits []int
	next   int
	id     uuid.UUID
}

func (f *fakeSource) Digit() int {
	d := f.digits[f.next%len(f.digits)]
	f.next++

	return d
}

func (f *fakeSource) UUID() uuid.UUID {
	return f.id
}

func TestGenerator_Generate_QRR(t *testing.T) {
	t.Parallel()

	src := &fakeSource{digits: []int{1, 2, 3, 4, 5, 6, 7}}
	gen := reference.NewGenerator(src)

	got, err := gen.Generate(entity.ReferenceTypeQRR)
	require.NoError(t, err)
	require.Equal(t, "0012345671234567", got)
	require.Len(t, got, 16)
}

func TestGenerator_Generate_SCOR(t *testing.T) {
	t.Parallel()

	src := &fakeSource{
		digits: []int{0},
		id:     uuid.Must(uuid.FromString("12345678-9abc-def0-1234-56789abcdef0")),
	}
	gen := reference.NewGenerator(src)

	got, err := gen.Generate(entity.ReferenceTypeSCOR)
	require.NoError(t, err)
	require.Equal(t, "RF123456789ABCDEF0123", got)
	require.Len(t, got, 21)
}

func TestGenerator_Generate_NON(t *testing.T) {
	t.Parallel()

	gen := reference.NewGenerator(&fakeSource{digits: []int{0}})

	got, err := gen.Generate(entity.ReferenceTypeNON)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestGenerator_Generate_UnknownType(t *testing.T) {
	t.Parallel()

	gen := reference.NewGenerator(&fakeSource{digits: []int{0}})

	_, err := gen.Generate("bogus")
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestGenerator_Generate_SystemSourceShape(t *testing.T) {
	t.Parallel()

	gen := reference.NewGenerator(reference.SystemSource())

	qrr, err := gen.Generate(entity.ReferenceTypeQRR)
	require.NoError(t, err)
	require.Regexp(t, `^00\d{14}$`, qrr)

	scor, err := gen.Generate(entity.ReferenceTypeSCOR)
	require.NoError(t, err)
	require.Regexp(t, `^RF[A-Z0-9]{19}$`, scor)
}
