package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"pixelwall/internal/entity"
)

const (
	currentUserContextKey = "current-user"
)

// AuthMiddleware JWT 认证中间件
func (h *HTTPHandler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeUnauthorized,
				Message: "missing or malformed authorization header",
			})
			return
		}

		user, err := h.loadTokenUser(c, tokenString)
		if err != nil {
			abortTokenError(c, err)
			return
		}

		c.Set(currentUserContextKey, user)
		c.Next()
	}
}

// OptionalAuthMiddleware 可选认证: 有 Token 则加载用户, 否则按匿名处理
func (h *HTTPHandler) OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		user, err := h.loadTokenUser(c, tokenString)
		if err != nil {
			// 携带了无效 Token 仍按错误处理, 而不是静默降级为匿名
			abortTokenError(c, err)
			return
		}

		c.Set(currentUserContextKey, user)
		c.Next()
	}
}

// RequireModerator 版主权限守卫中间件
func (h *HTTPHandler) RequireModerator() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsSuperuser {
			c.AbortWithStatusJSON(http.StatusForbidden, APIError{
				Code:    ErrCodeForbidden,
				Message: "moderator privileges required",
			})
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func (h *HTTPHandler) loadTokenUser(c *gin.Context, tokenString string) (*entity.DbUser, error) {
	claims, err := h.authManager.ParseToken(tokenString)
	if err != nil {
		return nil, entity.ErrTokenInvalid
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrUnauthorized
		}
		logrus.WithError(err).WithField("user_id", claims.UserID).Error("failed to load user")
		return nil, err
	}
	return user, nil
}

func abortTokenError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrTokenInvalid):
		c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
			Code:    ErrCodeSessionExpired,
			Message: "token invalid or expired",
		})
	case errors.Is(err, entity.ErrUnauthorized):
		c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
			Code:    ErrCodeUserNotFound,
			Message: "user no longer exists",
		})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, APIError{
			Code:    ErrCodeInternalError,
			Message: "failed to authenticate request",
		})
	}
}

// CurrentUser 从上下文获取当前认证用户
func CurrentUser(c *gin.Context) *entity.DbUser {
	value, exists := c.Get(currentUserContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*entity.DbUser)
	if !ok {
		return nil
	}
	return user
}
