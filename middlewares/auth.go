package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tableside/services"
	"tableside/utils"
)

// AuthMiddleware validates the Bearer token and stores the caller's identity
// in the gin context. Every protected route goes through it.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("superuser", claims.Superuser)
		c.Next()
	}
}

// Require is the coarse-grained policy gate: it evaluates the role decision
// table for one action. Services re-check admin on update/delete themselves.
func Require(action services.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := CurrentActor(c)
		if !services.Allowed(actor, action) {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentActor rebuilds the Actor set by AuthMiddleware.
func CurrentActor(c *gin.Context) services.Actor {
	return services.Actor{
		ID:        utils.CurrentUserID(c),
		Role:      utils.CurrentRole(c),
		Superuser: utils.CurrentSuperuser(c),
	}
}
