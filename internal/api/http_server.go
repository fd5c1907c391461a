package api

import (
	"time"

	"pixelwall/internal/auth"
	"pixelwall/internal/config"
	"pixelwall/internal/model"
	"pixelwall/internal/notify"
	"pixelwall/internal/service"
	"pixelwall/internal/storage"
)

// HTTPHandler HTTP 请求处理器
type HTTPHandler struct {
	cfg         config.Config
	repo        model.Repository
	storage     storage.Storage
	authManager *auth.Manager

	// 服务层
	accounts   *service.AccountService
	artworks   *service.ArtworkService
	moderation *service.ModerationService
	voting     *service.VotingService
	gallery    *service.GalleryService
	audit      *service.AuditService
}

// NewHTTPHandler 创建 HTTP 处理器实例
func NewHTTPHandler(cfg config.Config, repo model.Repository, store storage.Storage, notifier notify.Notifier) (*HTTPHandler, error) {
	expiry := time.Duration(cfg.JWTExpirationMinutes) * time.Minute
	authManager, err := auth.NewManager(cfg.JWTSecret, cfg.JWTIssuer, expiry)
	if err != nil {
		return nil, err
	}

	tokenTTL := time.Duration(cfg.TokenTTLMinutes) * time.Minute

	return &HTTPHandler{
		cfg:         cfg,
		repo:        repo,
		storage:     store,
		authManager: authManager,
		accounts:    service.NewAccountService(repo, authManager, notifier, store, tokenTTL, cfg.PublicBaseURL),
		artworks:    service.NewArtworkService(repo),
		moderation:  service.NewModerationService(repo, store),
		voting:      service.NewVotingService(repo),
		gallery:     service.NewGalleryService(repo),
		audit:       service.NewAuditService(repo),
	}, nil
}
