package services

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVirtualAccountNumberDeterministic(t *testing.T) {
	assert.Equal(t, "880088000042", VirtualAccountNumber("bca", 42))
	assert.Equal(t, VirtualAccountNumber("bca", 42), VirtualAccountNumber("BCA", 42))
	assert.Equal(t, "881088000042", VirtualAccountNumber("bni", 42))
	assert.Equal(t, "885088000042", VirtualAccountNumber("gopay", 42))
}

func TestVirtualAccountNumberUnknownProviderFallsBack(t *testing.T) {
	assert.Equal(t, "990088000042", VirtualAccountNumber("bank-antah", 42))
}

func TestVirtualAccountNumberKeepsLastSixDigits(t *testing.T) {
	assert.Equal(t, "880088456789", VirtualAccountNumber("bca", 123456789))
}

func TestQRPayloadFormat(t *testing.T) {
	assert.Equal(t, "KEDAIPOS.QR|7|38000", QRPayload(7, 38000))
	// Nominal dibulatkan tanpa desimal
	assert.Equal(t, "KEDAIPOS.QR|7|38001", QRPayload(7, 38000.5))
}

func TestQRImageRefIsPNGDataURI(t *testing.T) {
	ref, err := QRImageRef(QRPayload(7, 38000))
	require.NoError(t, err)

	const prefix = "data:image/png;base64,"
	require.True(t, strings.HasPrefix(ref, prefix))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(ref, prefix))
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), raw[:4])
}

func TestLookupMethodCaseInsensitive(t *testing.T) {
	m, ok := LookupMethod("BCA")
	require.True(t, ok)
	assert.Equal(t, "bca", m.Code)
	assert.Equal(t, CategoryBankTransfer, m.Category)
	assert.True(t, m.WithVirtualAccount)

	_, ok = LookupMethod("bitcoin")
	assert.False(t, ok)
}

func TestQRISHasNoVirtualAccount(t *testing.T) {
	m, ok := LookupMethod("qris")
	require.True(t, ok)
	assert.Equal(t, CategoryQRBased, m.Category)
	assert.False(t, m.WithVirtualAccount)
}

func TestListMethodsCoversAllCodes(t *testing.T) {
	methods := ListMethods()
	assert.Len(t, methods, len(paymentMethods))

	codes := map[string]bool{}
	for _, m := range methods {
		codes[m.Code] = true
	}
	for _, want := range []string{"qris", "gopay", "bca", "mandiri", "cash"} {
		assert.True(t, codes[want], "missing method %s", want)
	}
}
