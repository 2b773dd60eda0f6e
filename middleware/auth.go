package middleware

import (
	"net/http"
	"strings"

	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/models"
	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

func extractJwtClaims(c *gin.Context) (jwt.MapClaims, bool) {
	authHeader := c.GetHeader("Authorization")

	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
		c.Abort()
		return nil, false
	}

	authHeader = strings.Trim(authHeader, "\"' ")

	if !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		authHeader = "Bearer " + authHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format, expected: Bearer <token>"})
		c.Abort()
		return nil, false
	}

	tokenString := parts[1]
	tokenString = strings.Trim(tokenString, "\"' ")

	claims, err := utils.DecodeJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
		c.Abort()
		return nil, false
	}

	return claims, true
}

func setCallerContext(c *gin.Context, claims jwt.MapClaims) {
	c.Set("user_id", claims["user_id"])
	c.Set("role", claims["role"])
}

// CallerFromContext rebuilds the authenticated caller from the verified
// token claims. Returns nil when the request is anonymous.
func CallerFromContext(c *gin.Context) *models.User {
	userID, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	id, _ := userID.(string)
	if id == "" {
		return nil
	}

	user := &models.User{ID: id, Role: models.UserRole}
	if role, ok := c.Get("role"); ok {
		if r, ok := role.(string); ok && r != "" {
			user.Role = models.Role(r)
		}
	}
	return user
}

// JWTAuth requires a valid token and stores the caller identity in the
// request context.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := extractJwtClaims(c)
		if !ok {
			return
		}

		setCallerContext(c, claims)
		c.Next()
	}
}

// OptionalJWTAuth stores the caller identity when a valid token is present
// and lets anonymous requests through untouched. Used by the content list,
// which serves both visitors and subscribers.
func OptionalJWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.Trim(c.GetHeader("Authorization"), "\"' ")
		if authHeader == "" {
			c.Next()
			return
		}

		if !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
			authHeader = "Bearer " + authHeader
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 {
			c.Next()
			return
		}

		claims, err := utils.DecodeJWT(strings.Trim(parts[1], "\"' "))
		if err != nil {
			// Anonymous access still works with a bad token.
			c.Next()
			return
		}

		setCallerContext(c, claims)
		c.Next()
	}
}

// RequireCan requires a valid token whose caller holds the given capability.
func RequireCan(action models.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := extractJwtClaims(c)
		if !ok {
			return
		}

		setCallerContext(c, claims)

		caller := CallerFromContext(c)
		if !caller.Can(action) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied: missing capability " + string(action)})
			c.Abort()
			return
		}

		c.Next()
	}
}
