package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"pixelwall/internal/entity"
)

func (h *HTTPHandler) Register(c *gin.Context) {
	var req entity.AuthRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.accounts.Register(ctx, req)
	if err != nil {
		DomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":    entity.MakeUserSummary(user),
		"message": "registration successful, check your email to verify the account",
	})
}

func (h *HTTPHandler) Login(c *gin.Context) {
	var req entity.AuthLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}
	if strings.TrimSpace(req.Login) == "" {
		MissingField(c, "login")
		return
	}
	if req.Password == "" {
		MissingField(c, "password")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	resp, err := h.accounts.Login(ctx, req)
	if err != nil {
		DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *HTTPHandler) Logout(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	h.accounts.Logout(ctx, CurrentUser(c))
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me 返回当前认证用户信息
func (h *HTTPHandler) Me(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		Unauthorized(c, "not authenticated")
		return
	}
	c.JSON(http.StatusOK, entity.MakeUserSummary(user))
}

func (h *HTTPHandler) VerifyEmail(c *gin.Context) {
	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		MissingField(c, "token")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.accounts.VerifyEmail(ctx, token)
	if err != nil {
		DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":    entity.MakeUserSummary(user),
		"message": "email verified",
	})
}

func (h *HTTPHandler) ResendVerification(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		MissingField(c, "email")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := h.accounts.ResendVerification(ctx, req.Email); err != nil {
		DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "verification email sent"})
}

// RequestPasswordReset 已登录用户向自己的注册邮箱发送重置链接
func (h *HTTPHandler) RequestPasswordReset(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := h.accounts.RequestPasswordReset(ctx, CurrentUser(c)); err != nil {
		logrus.WithError(err).Warn("password reset request failed")
		DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "a reset link has been sent to your registered email"})
}

func (h *HTTPHandler) ResetPassword(c *gin.Context) {
	var req entity.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.accounts.ResetPassword(ctx, req); err != nil {
		DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

func (h *HTTPHandler) UpdateProfile(c *gin.Context) {
	var req entity.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.accounts.UpdateProfile(ctx, CurrentUser(c), req)
	if err != nil {
		DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.MakeUserSummary(user))
}

func (h *HTTPHandler) UploadProfilePhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		MissingField(c, "photo")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		InvalidPayload(c)
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	user, err := h.accounts.SetProfilePhoto(ctx, CurrentUser(c), fileHeader.Filename, file)
	if err != nil {
		DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.MakeUserSummary(user))
}
