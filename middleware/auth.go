package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"roomly/models"
	"roomly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const actorKey = "actor"

// AuthMiddleware validates the bearer token minted by the identity provider
// and places the resulting actor (user ID, email, admin flag) on the request
// context. Validated actors are cached in Redis by token hash so repeated
// requests skip signature verification.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		ctx := context.Background()
		cacheKey := utils.AuthCachePrefix + utils.HashToken(tokenString)
		authCache := utils.GetAuthCacheClient()

		if cached, err := authCache.Get(ctx, cacheKey).Result(); err == nil {
			var actor models.Actor
			if json.Unmarshal([]byte(cached), &actor) == nil {
				_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
				c.Set(actorKey, actor)
				c.Next()
				return
			}
		} else if err != redis.Nil {
			utils.GetLogger().Warn("auth cache lookup failed", zap.Error(err))
		}

		actor, err := utils.ActorFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		if data, err := json.Marshal(actor); err == nil {
			_ = authCache.Set(ctx, cacheKey, data, utils.AuthCacheTTL).Err()
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// AdminOnly rejects requests whose actor does not carry the admin role. It
// must run after AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok || !actor.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// GetActor retrieves the authenticated actor from the request context.
func GetActor(c *gin.Context) (models.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return models.Actor{}, false
	}
	actor, ok := v.(models.Actor)
	return actor, ok
}
