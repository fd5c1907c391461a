package sql

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"pixelwall/internal/entity"
)

// CreateVote inserts a vote row. The composite unique index on
// (user_id, artwork_id) makes concurrent duplicates surface as
// gorm.ErrDuplicatedKey.
func (r *GormRepository) CreateVote(ctx context.Context, vote *entity.DbVote) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if vote == nil {
		return fmt.Errorf("vote is nil")
	}
	return r.db.WithContext(ctx).Create(vote).Error
}

// HasVote reports whether the user already voted on the artwork.
func (r *GormRepository) HasVote(ctx context.Context, userID, artworkID uint) (bool, error) {
	if r == nil || r.db == nil {
		return false, fmt.Errorf("repository not initialised")
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.DbVote{}).
		Where("user_id = ? AND artwork_id = ?", userID, artworkID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// VoteTotal sums all vote values for the artwork. Computed on demand so the
// result always reflects the current vote set.
func (r *GormRepository) VoteTotal(ctx context.Context, artworkID uint) (int64, error) {
	if r == nil || r.db == nil {
		return 0, fmt.Errorf("repository not initialised")
	}
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.DbVote{}).
		Where("artwork_id = ?", artworkID).
		Select("COALESCE(SUM(value), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// ResetVotes deletes every vote for the artwork and writes one reset log row.
// Both run inside a single transaction: a partial outcome would be a
// correctness violation.
func (r *GormRepository) ResetVotes(ctx context.Context, artworkID uint, reason string) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if artworkID == 0 {
		return fmt.Errorf("invalid artwork id")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("artwork_id = ?", artworkID).Delete(&entity.DbVote{}).Error; err != nil {
			return err
		}
		return tx.Create(&entity.DbVoteResetLog{
			ArtworkID: artworkID,
			Reason:    reason,
		}).Error
	})
}

// ListVoteResetLogs returns the reset audit trail for an artwork, newest first.
func (r *GormRepository) ListVoteResetLogs(ctx context.Context, artworkID uint) ([]entity.DbVoteResetLog, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var logs []entity.DbVoteResetLog
	err := r.db.WithContext(ctx).
		Where("artwork_id = ?", artworkID).
		Order("id DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
