package middleware

import (
	"fmt"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"crewtime-backend/config"
)

// AuthorizationRequired accepts a bearer token and falls back to the
// session cookie set by the login endpoint.
func AuthorizationRequired() fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
		TokenLookup: fmt.Sprintf("header:Authorization,cookie:%s", config.Conf.Auth.CookieName),
		AuthScheme:  "Bearer",
	})
}
