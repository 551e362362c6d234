package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alpenbill/qrbill/internal/entity"
)

func TestReferenceType_IsValid(t *testing.T) {
	t.Parallel()

	require.True(t, entity.ReferenceTypeQRR.IsValid())
	require.True(t, entity.ReferenceTypeSCOR.IsValid())
	require.True(t, entity.ReferenceTypeNON.IsValid())
	require.False(t, entity.ReferenceType("").IsValid())
	require.False(t, entity.ReferenceType("qrr").IsValid())
	require.False(t, entity.ReferenceType("IBAN").IsValid())
}

func TestPaymentReference_IsZero(t *testing.T) {
	t.Parallel()

	require.True(t, entity.PaymentReference{}.IsZero())
	require.False(t, entity.PaymentReference{Type: entity.ReferenceTypeNON}.IsZero())
	require.False(t, entity.PaymentReference{Value: "0000000000000095"}.IsZero())
}

func TestCurrency_IsValid(t *testing.T) {
	t.Parallel()

	require.True(t, entity.CurrencyCHF.IsValid())
	require.True(t, entity.CurrencyEUR.IsValid())
	require.False(t, entity.Currency("USD").IsValid())
	require.False(t, entity.Currency("").IsValid())
}
