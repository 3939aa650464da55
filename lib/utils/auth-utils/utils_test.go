package authutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"crewtime-backend/config"
	"crewtime-backend/models"
	dbmodels "crewtime-backend/models/db"
)

func initTestConfig() {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 3600
	config.Conf.Auth.JWTRefreshExpireInSec = 7200
}

func TestTokenRoundTrip(t *testing.T) {
	initTestConfig()

	t.Run(`access token carries the user claims`, func(t *testing.T) {
		user := dbmodels.User{
			FirstName: "John",
			LastName:  "Smith",
			Role:      models.UserRoleManager,
			LaborView: true,
		}
		user.ID = "user-1"

		tokenString, err := GetToken(user)
		require.Nil(t, err)
		require.NotEmpty(t, tokenString)

		claims, err := ParseToken(tokenString)
		require.Nil(t, err)
		require.Equal(t, "user-1", claims["sub"])
		require.Equal(t, "John Smith", claims["name"])
		require.Equal(t, string(models.UserRoleManager), claims["role"])
		views, ok := claims["views"].(map[string]interface{})
		require.Equal(t, true, ok)
		require.Equal(t, true, views["labor"])
		require.Equal(t, false, views["truck"])
	})

	t.Run(`refresh token carries the subject`, func(t *testing.T) {
		tokenString, err := GetRefreshToken("user-1", "John Smith")
		require.Nil(t, err)

		claims, err := ParseToken(tokenString)
		require.Nil(t, err)
		require.Equal(t, "user-1", claims["sub"])
	})

	t.Run(`tampered token rejected`, func(t *testing.T) {
		tokenString, err := GetRefreshToken("user-1", "John Smith")
		require.Nil(t, err)

		_, err = ParseToken(tokenString + "x")
		require.NotNil(t, err)
	})

	t.Run(`token signed with another secret rejected`, func(t *testing.T) {
		tokenString, err := GetRefreshToken("user-1", "John Smith")
		require.Nil(t, err)

		config.Conf.Auth.JWTSecret = "rotated-secret"
		defer initTestConfig()
		_, err = ParseToken(tokenString)
		require.NotNil(t, err)
	})
}
