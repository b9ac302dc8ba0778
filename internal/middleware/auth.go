package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/inshape-booking/internal/httperr"
)

const (
	ContextAdminSubject = "adminSubject"
	RoleAdmin           = "admin"
)

// AdminAuth accepts HS256 bearer tokens whose "role" claim is "admin".
func AdminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header")
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(
			parts[1],
			claims,
			func(token *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token")
			return
		}

		role, _ := claims["role"].(string)
		if role != RoleAdmin {
			httperr.Unauthorized(c, "invalid_token_payload")
			return
		}

		sub, _ := claims.GetSubject()
		c.Set(ContextAdminSubject, sub)

		c.Next()
	}
}
