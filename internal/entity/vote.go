package entity

import "time"

// Vote directions accepted from clients.
const (
	VoteUp   = "up"
	VoteDown = "down"
)

// DbVote ties one user to one artwork with a signed unit value. The composite
// unique index is the authoritative one-vote-per-pair guarantee; application
// checks are advisory only.
type DbVote struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Value     int       `gorm:"column:value;not null" json:"value"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:idx_votes_user_artwork" json:"user_id"`
	ArtworkID uint      `gorm:"column:artwork_id;not null;uniqueIndex:idx_votes_user_artwork" json:"artwork_id"`
}

// TableName overrides default pluralised name.
func (DbVote) TableName() string {
	return "votes"
}
