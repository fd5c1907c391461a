package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"pixelwall/internal/entity"
	"pixelwall/internal/model"
)

// VotingService 投票业务
type VotingService struct {
	repo model.Repository
}

func NewVotingService(repo model.Repository) *VotingService {
	return &VotingService{repo: repo}
}

// CastVote records a single up or down vote for the actor on an artwork.
// A second vote by the same user on the same artwork fails with
// entity.ErrAlreadyVoted regardless of direction.
func (s *VotingService) CastVote(ctx context.Context, actor *entity.DbUser, artworkID uint, direction string) error {
	if actor == nil {
		return entity.ErrUnauthorized
	}

	var value int
	switch strings.ToLower(strings.TrimSpace(direction)) {
	case entity.VoteUp:
		value = 1
	case entity.VoteDown:
		value = -1
	default:
		return entity.ErrInvalidAction
	}

	if _, err := s.repo.GetArtwork(ctx, artworkID); err != nil {
		return translateNotFound(err)
	}

	voted, err := s.repo.HasVote(ctx, actor.ID, artworkID)
	if err != nil {
		return err
	}
	if voted {
		return entity.ErrAlreadyVoted
	}

	err = s.repo.CreateVote(ctx, &entity.DbVote{
		Value:     value,
		UserID:    actor.ID,
		ArtworkID: artworkID,
	})
	if err != nil {
		// 并发下两次投票同时通过 HasVote 检查, 唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entity.ErrAlreadyVoted
		}
		return err
	}
	return nil
}

// VoteTotal returns the signed sum of all votes on an artwork.
func (s *VotingService) VoteTotal(ctx context.Context, artworkID uint) (int64, error) {
	if _, err := s.repo.GetArtwork(ctx, artworkID); err != nil {
		return 0, translateNotFound(err)
	}
	return s.repo.VoteTotal(ctx, artworkID)
}

// ResetVotes deletes every vote on a moderated artwork and writes a reset log
// entry in the same transaction. The reason is mandatory.
func (s *VotingService) ResetVotes(ctx context.Context, actor *entity.DbUser, artworkID uint, reason string) error {
	if err := Authorize(actor, 0, ActionResetVotes); err != nil {
		return err
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entity.ErrMissingReason
	}

	artwork, err := s.repo.GetArtwork(ctx, artworkID)
	if err != nil {
		return translateNotFound(err)
	}
	if artwork.ModerationStatus != entity.StatusModerated {
		return entity.ErrInvalidState
	}

	return s.repo.ResetVotes(ctx, artworkID, reason)
}

// ResetHistory lists the reset audit trail for one artwork, newest first.
func (s *VotingService) ResetHistory(ctx context.Context, actor *entity.DbUser, artworkID uint) ([]entity.DbVoteResetLog, error) {
	if err := Authorize(actor, 0, ActionViewLogs); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetArtwork(ctx, artworkID); err != nil {
		return nil, translateNotFound(err)
	}
	return s.repo.ListVoteResetLogs(ctx, artworkID)
}
