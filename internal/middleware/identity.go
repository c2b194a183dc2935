package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/psiboxes/box-scheduler/internal/config"
)

const ContextPsychologist = "psychologist"

// IdentityMiddleware resolves the current psychologist. A valid bearer token
// wins; otherwise the configured default identity applies. Credential
// management lives outside this service.
func IdentityMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextPsychologist, cfg.DefaultPsychologist)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.Next()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.Next()
			return
		}

		if name, ok := claims["name"].(string); ok && name != "" {
			c.Set(ContextPsychologist, name)
		}

		c.Next()
	}
}

// Psychologist reads the identity set by IdentityMiddleware.
func Psychologist(c *gin.Context) string {
	if v, ok := c.Get(ContextPsychologist); ok {
		if name, ok := v.(string); ok {
			return name
		}
	}
	return ""
}
