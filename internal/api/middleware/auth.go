package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/johnzhangfit/verttracker/internal/api/response"
	"github.com/johnzhangfit/verttracker/internal/apperrors"
	"github.com/spf13/viper"
)

// UserIDKey is the gin context key the authenticated user ID lands under.
const UserIDKey = "userID"

// JWTAuth verifies the bearer token and injects the user ID into the context.
// Handlers behind it never see an unauthenticated request.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.AbortError(c, apperrors.ErrTokenRequired)
			return
		}

		// Expected shape is "Bearer <token>".
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.AbortError(c, apperrors.Auth("invalid authorization format"))
			return
		}

		secret := viper.GetString("jwt.secret")
		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			response.AbortError(c, apperrors.ErrTokenInvalid)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.AbortError(c, apperrors.ErrTokenInvalid)
			return
		}
		userID, ok := claims["user_id"].(string)
		if !ok {
			response.AbortError(c, apperrors.ErrTokenInvalid)
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
