package utils

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"fishreg/internal/pkg/constants"
)

func TestAuthTokenRoundTrip(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "test-secret")

	token, err := GenerateAuthToken(&AuthTokenWrapper{UserID: 42, Role: constants.RoleInspector})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := ParseAuthToken(token)
	require.NoError(t, err)
	require.Equal(t, int64(42), parsed.UserID)
	require.Equal(t, constants.RoleInspector, parsed.Role)
	require.NotZero(t, parsed.ExpiresAt)
}

func TestParseAuthToken_RejectsGarbage(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "test-secret")

	_, err := ParseAuthToken("not.a.token")
	require.ErrorIs(t, err, constants.ErrUnauthorized)
}

func TestParseAuthToken_RejectsWrongSecret(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "test-secret")
	token, err := GenerateAuthToken(&AuthTokenWrapper{UserID: 1, Role: constants.RoleAdmin})
	require.NoError(t, err)

	viper.Set(constants.ViperSecretKey, "rotated-secret")
	defer viper.Set(constants.ViperSecretKey, "test-secret")

	_, err = ParseAuthToken(token)
	require.ErrorIs(t, err, constants.ErrUnauthorized)
}
