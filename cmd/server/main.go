package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"pixelwall/internal/api"
	"pixelwall/internal/config"
	"pixelwall/internal/model"
	"pixelwall/internal/notify"
	"pixelwall/internal/storage"
)

func main() {
	// 初始化配置
	cfg, err := config.ParseConfig()
	if err != nil {
		logrus.WithError(err).Error("Failed to parse config")
		return
	}

	// 初始化logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	repo, err := model.InitRepository(&cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise repository")
		return
	}

	if err := model.SeedAdminUser(context.Background(), repo, cfg); err != nil {
		logrus.WithError(err).Warn("failed to seed admin user")
	}

	store, err := storage.NewStorage(cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise storage")
		return
	}

	notifier := notify.NewNotifier(cfg)

	httpHandler, err := api.NewHTTPHandler(cfg, repo, store, notifier)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise http handler")
		return
	}

	// 设置Gin模式
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// 添加中间件
	r.Use(LoggingMiddleware())
	r.Use(CORSMiddleware())
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	apiGroup := r.Group("/api")

	authGroup := apiGroup.Group("/auth")
	authGroup.POST("/register", httpHandler.Register)
	authGroup.POST("/login", httpHandler.Login)
	authGroup.GET("/verify-email", httpHandler.VerifyEmail)
	authGroup.POST("/resend-verification", httpHandler.ResendVerification)
	authGroup.POST("/request-password-reset", httpHandler.AuthMiddleware(), httpHandler.RequestPasswordReset)
	authGroup.POST("/reset-password", httpHandler.ResetPassword)
	authGroup.POST("/logout", httpHandler.AuthMiddleware(), httpHandler.Logout)
	authGroup.GET("/me", httpHandler.AuthMiddleware(), httpHandler.Me)

	// 画廊对匿名访客开放, 携带 Token 时可见未分配位置的作品
	apiGroup.GET("/gallery", httpHandler.OptionalAuthMiddleware(), httpHandler.Gallery)
	apiGroup.GET("/artworks/:id", httpHandler.GetArtwork)
	apiGroup.GET("/artworks/:id/image", httpHandler.ArtworkImage)
	apiGroup.GET("/artworks/:id/qr", httpHandler.ArtworkQRCode)
	apiGroup.GET("/artworks/:id/votes", httpHandler.VoteTotal)

	protected := apiGroup.Group("")
	protected.Use(httpHandler.AuthMiddleware())
	protected.PATCH("/profile", httpHandler.UpdateProfile)
	protected.POST("/profile/photo", httpHandler.UploadProfilePhoto)
	protected.POST("/artworks", httpHandler.UploadArtwork)
	protected.GET("/artworks/mine", httpHandler.MyArtworks)
	protected.POST("/artworks/:id/request-moderation", httpHandler.RequestModeration)
	protected.POST("/artworks/:id/archive", httpHandler.ArchiveArtwork)
	protected.POST("/artworks/:id/unarchive", httpHandler.UnarchiveArtwork)
	protected.POST("/artworks/:id/votes", httpHandler.CastVote)

	moderation := protected.Group("/moderation")
	moderation.Use(httpHandler.RequireModerator())
	moderation.GET("/artworks", httpHandler.ModerationQueue)
	moderation.POST("/artworks/:id/approve", httpHandler.ApproveArtwork)
	moderation.POST("/artworks/:id/reject", httpHandler.RejectArtwork)
	moderation.POST("/artworks/:id/unmoderate", httpHandler.UnmoderateArtwork)
	moderation.PATCH("/artworks/:id/location", httpHandler.AssignLocation)
	moderation.POST("/artworks/:id/votes/reset", httpHandler.ResetVotes)
	moderation.GET("/artworks/:id/votes/resets", httpHandler.VoteResetHistory)
	moderation.GET("/logs", httpHandler.TransactionLogs)

	if localProvider, ok := store.(storage.LocalBaseDirProvider); ok {
		r.Static("/files", localProvider.LocalBaseDir())
	}

	serverHost := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
	logger.WithField("host", serverHost).Info("服务器启动")
	// 创建HTTP服务器
	httpServer := &http.Server{
		Addr:         serverHost,
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  300 * time.Second,
	}
	err = httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.WithError(err).Error("服务器启动失败")
	}
}

// CORSMiddleware CORS跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		c.Header("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// LoggingMiddleware 日志记录中间件
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		// 处理请求
		c.Next()
		// 记录请求结束
		duration := time.Since(start)
		logrus.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"duration":  duration.String(),
			"size":      c.Writer.Size(),
			"client_ip": c.ClientIP(),
		}).Info("http_request")
	}
}
