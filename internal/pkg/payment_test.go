package pkg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaymentIntent(t *testing.T) {
	intent, err := NewPaymentIntent()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(intent.TransactionID, "SAQ_"))
	assert.Len(t, intent.TransactionID, len("SAQ_")+12)
	assert.Equal(t, strings.ToUpper(intent.TransactionID), intent.TransactionID)

	assert.True(t, strings.HasPrefix(intent.Reference, "REF_"))
	assert.True(t, strings.HasPrefix(intent.PaymentURL, "https://"))
	assert.Contains(t, intent.PaymentURL, intent.Reference)

	other, err := NewPaymentIntent()
	require.NoError(t, err)
	assert.NotEqual(t, intent.TransactionID, other.TransactionID)
	assert.NotEqual(t, intent.Reference, other.Reference)
}

func TestRandDigits(t *testing.T) {
	code, err := RandDigits(6)
	require.NoError(t, err)
	require.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9')
	}
}
