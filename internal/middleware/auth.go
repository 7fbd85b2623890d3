package middleware

import (
	"net/http"
	"strings"

	"Saut_Review/internal/authz"
	"Saut_Review/internal/pkg"
	"Saut_Review/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

const ContextActorKey = "actor"

// ActorFromCtx 取当前请求人；匿名请求返回 nil
func ActorFromCtx(c *gin.Context) *authz.Actor {
	v, exists := c.Get(ContextActorKey)
	if !exists {
		return nil
	}
	actor, _ := v.(*authz.Actor)
	return actor
}

func resolveActor(c *gin.Context) (*authz.Actor, string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, "missing authorization header", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, "invalid authorization format", false
	}

	tokenStr := parts[1]
	claims, err := pkg.ParseAccess(tokenStr)
	if err != nil {
		return nil, "invalid or expired token", false
	}

	// redis 校验：每用户只认最后一次登录钉住的 token
	sessions := &redis.SessionRepository{}
	pinned, err := sessions.GetToken(claims.UserID)
	if err != nil || pinned != tokenStr {
		return nil, "account has been logged in elsewhere", false
	}

	// 校验通过后顺延过期时间
	if err = sessions.ExtendToken(claims.UserID); err != nil {
		return nil, "session extend failed", false
	}

	return &authz.Actor{ID: claims.UserID, Role: claims.Role}, "", true
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, msg, ok := resolveActor(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": msg})
			return
		}
		c.Set(ContextActorKey, actor)
		c.Next()
	}
}

// OptionalAuthMiddleware 匿名可用的接口（捐赠/反馈提交）：带合法
// token 则注入 actor，否则按匿名放行
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor, _, ok := resolveActor(c); ok {
			c.Set(ContextActorKey, actor)
		}
		c.Next()
	}
}
