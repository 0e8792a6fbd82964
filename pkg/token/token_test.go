package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	signed, err := GenerateJWT(42, "secret", 60)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := ValidateJWT(signed, "secret")
	require.NoError(t, err)
	require.EqualValues(t, 42, claims.UserID)
	require.Equal(t, "festly", claims.Issuer)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	signed, err := GenerateJWT(42, "secret", 60)
	require.NoError(t, err)

	_, err = ValidateJWT(signed, "other-secret")
	require.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	signed, err := GenerateJWT(42, "secret", -1)
	require.NoError(t, err)

	_, err = ValidateJWT(signed, "secret")
	require.ErrorContains(t, err, "expired")
}

func TestValidateRejectsEmptyInput(t *testing.T) {
	_, err := ValidateJWT("", "secret")
	require.Error(t, err)

	_, err = ValidateJWT("not-a-token", "")
	require.Error(t, err)
}
