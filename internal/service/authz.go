package service

import (
	"errors"

	"gorm.io/gorm"

	"pixelwall/internal/entity"
)

// Action names a mutating operation for authorization purposes.
type Action string

const (
	ActionRequestModeration Action = "artwork.request_moderation"
	ActionModerate          Action = "artwork.moderate"
	ActionArchive           Action = "artwork.archive"
	ActionResetVotes        Action = "votes.reset"
	ActionViewLogs          Action = "logs.view"
)

// Authorize is the single authorization predicate used by every mutating
// operation. ownerID is the owning user of the touched resource, zero when
// ownership does not apply.
func Authorize(actor *entity.DbUser, ownerID uint, action Action) error {
	if actor == nil || actor.ID == 0 {
		return entity.ErrUnauthorized
	}
	switch action {
	case ActionModerate, ActionResetVotes, ActionViewLogs:
		if actor.IsSuperuser {
			return nil
		}
	case ActionRequestModeration:
		if actor.ID == ownerID {
			return nil
		}
	case ActionArchive:
		if actor.ID == ownerID || actor.IsSuperuser {
			return nil
		}
	}
	return entity.ErrUnauthorized
}

// translateNotFound maps the store's missing-record error onto the domain
// taxonomy.
func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.ErrNotFound
	}
	return err
}
