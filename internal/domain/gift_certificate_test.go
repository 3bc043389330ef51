package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGiftCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateGiftCode()
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(code, "GIFT-"))

		suffix := strings.TrimPrefix(code, "GIFT-")
		require.Len(t, suffix, GiftCodeLength)
		for _, c := range suffix {
			assert.True(t, strings.ContainsRune(GiftCodeAlphabet, c),
				"character %q not in alphabet", c)
		}
		seen[code] = true
	}
	// 50 draws from a 31^8 space should never collide
	assert.Len(t, seen, 50)
}

func TestGiftCertificateStatusIsValid(t *testing.T) {
	for _, s := range []GiftCertificateStatus{
		GiftCertificateStatusActive, GiftCertificateStatusRedeemed,
		GiftCertificateStatusExpired, GiftCertificateStatusCancelled,
	} {
		assert.True(t, s.IsValid(), "expected %q to be valid", s)
	}
	assert.False(t, GiftCertificateStatus("void").IsValid())
}

func TestGiftCertificateValidateBalance(t *testing.T) {
	cert := &GiftCertificate{Amount: 10000, Balance: 5000, Status: GiftCertificateStatusActive}
	require.NoError(t, cert.ValidateBalance())

	cert.Balance = -1
	require.Error(t, cert.ValidateBalance())

	cert.Balance = 10001
	require.Error(t, cert.ValidateBalance())

	cert.Balance = 100
	cert.Status = GiftCertificateStatusRedeemed
	require.Error(t, cert.ValidateBalance())

	cert.Balance = 0
	require.NoError(t, cert.ValidateBalance())
}

func TestCreateGiftCertificateRequestValidate(t *testing.T) {
	require.NoError(t, (&CreateGiftCertificateRequest{Amount: 5000}).Validate())
	require.Error(t, (&CreateGiftCertificateRequest{Amount: 0}).Validate())
	require.Error(t, (&CreateGiftCertificateRequest{Amount: 5000, RecipientEmail: "bad"}).Validate())
	require.NoError(t, (&CreateGiftCertificateRequest{Amount: 5000, RecipientEmail: "kim@example.com"}).Validate())
}

func TestUpdateGiftCertificateRequestValidate(t *testing.T) {
	balance := int64(100)
	status := GiftCertificateStatusCancelled

	require.NoError(t, (&UpdateGiftCertificateRequest{ID: 1, Balance: &balance}).Validate())
	require.NoError(t, (&UpdateGiftCertificateRequest{ID: 1, Status: &status}).Validate())
	require.Error(t, (&UpdateGiftCertificateRequest{ID: 0, Balance: &balance}).Validate())
	require.Error(t, (&UpdateGiftCertificateRequest{ID: 1}).Validate())

	bad := GiftCertificateStatus("void")
	require.Error(t, (&UpdateGiftCertificateRequest{ID: 1, Status: &bad}).Validate())
}

func TestRedeemGiftCertificateRequestValidate(t *testing.T) {
	require.NoError(t, (&RedeemGiftCertificateRequest{Code: "GIFT-ABCDEFGH", Amount: 100}).Validate())
	require.Error(t, (&RedeemGiftCertificateRequest{Amount: 100}).Validate())
	require.Error(t, (&RedeemGiftCertificateRequest{Code: "GIFT-ABCDEFGH", Amount: 0}).Validate())
}
