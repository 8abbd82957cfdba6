package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/models"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/service"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/shared"
)

const authContextKey = "auth_context"

// AuthMiddleware checks for a valid JWT bearer token and stores the caller's
// AuthContext for the handlers.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		SetAuthContext(c, shared.AuthContext{
			UserID: claims.UserID,
			Role:   claims.Role,
		})
		c.Next()
	}
}

// RequireLibrarian rejects callers without the librarian role. The services
// re-check authorization; this gate just fails fast at the route level.
func RequireLibrarian() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := GetAuthContext(c)
		if actor.Role != models.RoleLibrarian {
			c.JSON(http.StatusForbidden, gin.H{"error": "librarian role required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// SetAuthContext stores the caller's AuthContext on the request.
func SetAuthContext(c *gin.Context, actor shared.AuthContext) {
	c.Set(authContextKey, actor)
}

// GetAuthContext returns the caller's AuthContext set by AuthMiddleware. The
// zero value means the route was not behind the middleware.
func GetAuthContext(c *gin.Context) shared.AuthContext {
	if v, ok := c.Get(authContextKey); ok {
		if actor, ok := v.(shared.AuthContext); ok {
			return actor
		}
	}
	return shared.AuthContext{}
}
