package sql

import (
	"context"
	"fmt"
	"strings"

	"pixelwall/internal/entity"
)

// AppendTransactionLog writes one append-only event record.
func (r *GormRepository) AppendTransactionLog(ctx context.Context, eventType, description string) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if strings.TrimSpace(eventType) == "" {
		return fmt.Errorf("event type is empty")
	}
	return r.db.WithContext(ctx).Create(&entity.DbTransactionLog{
		EventType:   eventType,
		Description: description,
	}).Error
}

// ListTransactionLogs returns all event records, newest first.
func (r *GormRepository) ListTransactionLogs(ctx context.Context) ([]entity.DbTransactionLog, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var logs []entity.DbTransactionLog
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
