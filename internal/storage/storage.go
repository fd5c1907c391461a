package storage

import (
	"context"
	"fmt"
	"strings"

	"pixelwall/internal/config"
)

const (
	// TypeLocal 表示本地文件系统存储。
	TypeLocal = "local"
	// TypeS3 表示 Amazon S3 或兼容的存储后端。
	TypeS3 = "s3"
	// TypeOSS 表示阿里云 OSS 存储。
	TypeOSS = "oss"
	// TypeCOS 表示腾讯云 COS 存储。
	TypeCOS = "cos"
	// TypeR2 表示 Cloudflare R2 存储。
	TypeR2 = "r2"
)

// SaveOptions 控制存储后端如何持久化文件。
//
// Category 用于组织文件，Extension 提示文件扩展名（不含前导点）。
// BaseName 非空时生成确定性的对象键（同名覆盖或跳过），为空时使用时间戳命名。
// SkipIfExists 为真时，已存在的对象不会被重写，用于幂等的二维码落盘。
type SaveOptions struct {
	Category     string
	Extension    string
	BaseName     string
	SkipIfExists bool
}

// Storage 持久化二进制数据并返回存储特定的对象键，之后可用该键读回数据。
type Storage interface {
	Save(ctx context.Context, data []byte, opts SaveOptions) (string, error)
	Load(ctx context.Context, key string) ([]byte, error)
}

// LocalBaseDirProvider 本地存储后端暴露根目录，供 HTTP 层挂载静态文件服务。
type LocalBaseDirProvider interface {
	LocalBaseDir() string
}

// NewStorage 根据配置实例化存储后端。
func NewStorage(cfg config.Config) (Storage, error) {
	typeName := strings.ToLower(strings.TrimSpace(cfg.StorageType))
	switch typeName {
	case "", TypeLocal:
		return NewLocalStorage(cfg.StorageLocalDir)
	case TypeS3:
		return NewS3Storage(cfg)
	case TypeOSS:
		return NewOSSStorage(cfg)
	case TypeCOS:
		return NewCOSStorage(cfg)
	case TypeR2:
		return NewR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.StorageType)
	}
}
