package model

import (
	"context"

	"pixelwall/internal/entity"
)

// Repository 定义数据库操作接口
type Repository interface {
	// 用户管理
	CreateUser(ctx context.Context, user *entity.DbUser) error
	UpdateUser(ctx context.Context, id uint, updates entity.UserUpdates) error
	GetUserByID(ctx context.Context, id uint) (*entity.DbUser, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.DbUser, error)
	GetUserByLogin(ctx context.Context, identifier string) (*entity.DbUser, error)
	IdentityExists(ctx context.Context, username, email string) (bool, error)
	CountSuperusers(ctx context.Context) (int64, error)

	// 作品
	CreateArtwork(ctx context.Context, artwork *entity.DbArtwork) error
	UpdateArtwork(ctx context.Context, id uint, updates entity.ArtworkUpdates) error
	GetArtwork(ctx context.Context, id uint) (*entity.DbArtwork, error)
	ListArtworksByOwner(ctx context.Context, userID uint) ([]entity.DbArtwork, error)
	ListArtworks(ctx context.Context) ([]entity.DbArtwork, error)
	ListGallery(ctx context.Context, query entity.GalleryQuery) ([]entity.GalleryItem, error)

	// 投票
	CreateVote(ctx context.Context, vote *entity.DbVote) error
	HasVote(ctx context.Context, userID, artworkID uint) (bool, error)
	VoteTotal(ctx context.Context, artworkID uint) (int64, error)
	ResetVotes(ctx context.Context, artworkID uint, reason string) error
	ListVoteResetLogs(ctx context.Context, artworkID uint) ([]entity.DbVoteResetLog, error)

	// 审计日志
	AppendTransactionLog(ctx context.Context, eventType, description string) error
	ListTransactionLogs(ctx context.Context) ([]entity.DbTransactionLog, error)
}
