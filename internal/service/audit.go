package service

import (
	"context"

	"pixelwall/internal/entity"
	"pixelwall/internal/model"
)

// AuditService 审计日志查询
type AuditService struct {
	repo model.Repository
}

func NewAuditService(repo model.Repository) *AuditService {
	return &AuditService{repo: repo}
}

// Events lists the append-only transaction log, newest first. Moderators only.
func (s *AuditService) Events(ctx context.Context, actor *entity.DbUser) ([]entity.DbTransactionLog, error) {
	if err := Authorize(actor, 0, ActionViewLogs); err != nil {
		return nil, err
	}
	return s.repo.ListTransactionLogs(ctx)
}
