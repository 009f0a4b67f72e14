package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"match-service/internal/response"
)

// Context keys set by Auth
const (
	ContextUserIDKey = "user_id"
	ContextTokenKey  = "jwtToken"
)

// Auth returns a middleware that validates HMAC-signed JWTs and stores the caller's
// user ID in the gin context
func Auth(jwtSecret string) gin.HandlerFunc {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Authorization header is required")
			return
		}

		// "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(c, "Invalid authorization header format")
			return
		}
		tokenString := strings.TrimSpace(parts[1])

		token, err := jwt.Parse(tokenString, keyFunc)
		if err != nil || !token.Valid {
			unauthorized(c, "Invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			unauthorized(c, "Invalid token claims")
			return
		}

		userID, err := uuid.Parse(subjectFromClaims(claims))
		if err != nil {
			unauthorized(c, "User ID not found in token")
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Set(ContextTokenKey, tokenString)
		c.Next()
	}
}

// subjectFromClaims supports "user_id", "sub" and "uid" claim formats, in that order
func subjectFromClaims(claims jwt.MapClaims) string {
	for _, key := range []string{"user_id", "sub", "uid"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func unauthorized(c *gin.Context, message string) {
	response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, message)
}
