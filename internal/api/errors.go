package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pixelwall/internal/entity"
)

// 错误码定义
const (
	// 通用错误码
	ErrCodeInvalidRequest = "ERR_INVALID_REQUEST"
	ErrCodeUnauthorized   = "ERR_UNAUTHORIZED"
	ErrCodeForbidden      = "ERR_FORBIDDEN"
	ErrCodeNotFound       = "ERR_NOT_FOUND"
	ErrCodeInternalError  = "ERR_INTERNAL_ERROR"

	// 认证错误码
	ErrCodeInvalidCredentials = "ERR_INVALID_CREDENTIALS"
	ErrCodeEmailNotVerified   = "ERR_EMAIL_NOT_VERIFIED"
	ErrCodeIdentityExists     = "ERR_IDENTITY_EXISTS"
	ErrCodeTokenInvalid       = "ERR_TOKEN_INVALID"
	ErrCodeSessionExpired     = "ERR_SESSION_EXPIRED"
	ErrCodeUserNotFound       = "ERR_USER_NOT_FOUND"

	// 业务逻辑错误码
	ErrCodeInvalidFormat     = "ERR_INVALID_FORMAT"
	ErrCodeInvalidState      = "ERR_INVALID_STATE"
	ErrCodeInvalidTransition = "ERR_INVALID_TRANSITION"
	ErrCodeAlreadyVoted      = "ERR_ALREADY_VOTED"
	ErrCodeMissingReason     = "ERR_MISSING_REASON"
	ErrCodeMissingField      = "ERR_MISSING_FIELD"
)

// APIError 统一的 API 错误响应结构
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse 返回统一格式的错误响应
func ErrorResponse(c *gin.Context, status int, code string, message string) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
	})
}

// BadRequest 400 错误请求
func BadRequest(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusBadRequest, code, message)
}

// Unauthorized 401 未授权
func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, ErrCodeUnauthorized, message)
}

// Forbidden 403 禁止访问
func Forbidden(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusForbidden, ErrCodeForbidden, message)
}

// NotFound 404 资源不存在
func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, ErrCodeNotFound, message)
}

// InternalError 500 服务器内部错误
func InternalError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, ErrCodeInternalError, message)
}

// MissingField 缺少必填字段
func MissingField(c *gin.Context, field string) {
	c.JSON(http.StatusBadRequest, APIError{
		Code:    ErrCodeMissingField,
		Message: field + " is required",
		Details: gin.H{"field": field},
	})
}

// InvalidPayload 无效的请求体
func InvalidPayload(c *gin.Context) {
	ErrorResponse(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request payload")
}

// DomainError 将业务层错误映射为 HTTP 响应
func DomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrUnauthorized):
		Forbidden(c, "permission denied")
	case errors.Is(err, entity.ErrNotFound):
		NotFound(c, "resource not found")
	case errors.Is(err, entity.ErrInvalidCredentials):
		ErrorResponse(c, http.StatusUnauthorized, ErrCodeInvalidCredentials, "invalid login or password")
	case errors.Is(err, entity.ErrEmailNotVerified):
		ErrorResponse(c, http.StatusForbidden, ErrCodeEmailNotVerified, "email address not verified")
	case errors.Is(err, entity.ErrDuplicateIdentity):
		ErrorResponse(c, http.StatusConflict, ErrCodeIdentityExists, "username or email already registered")
	case errors.Is(err, entity.ErrTokenInvalid):
		BadRequest(c, ErrCodeTokenInvalid, "token invalid or expired")
	case errors.Is(err, entity.ErrInvalidFormat):
		BadRequest(c, ErrCodeInvalidFormat, "unsupported image format")
	case errors.Is(err, entity.ErrInvalidState):
		ErrorResponse(c, http.StatusConflict, ErrCodeInvalidState, "operation not allowed in current state")
	case errors.Is(err, entity.ErrInvalidTransition):
		ErrorResponse(c, http.StatusConflict, ErrCodeInvalidTransition, "invalid moderation transition")
	case errors.Is(err, entity.ErrAlreadyVoted):
		ErrorResponse(c, http.StatusConflict, ErrCodeAlreadyVoted, "user has already voted on this artwork")
	case errors.Is(err, entity.ErrMissingReason):
		BadRequest(c, ErrCodeMissingReason, "a reason is required")
	case errors.Is(err, entity.ErrInvalidAction):
		BadRequest(c, ErrCodeInvalidRequest, err.Error())
	default:
		InternalError(c, "internal server error")
	}
}
