package entity

import "time"

// DbVoteResetLog is the immutable audit record written when a moderator resets
// an artwork's votes. Rows are only ever inserted.
type DbVoteResetLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `gorm:"column:reset_date" json:"reset_date"`
	ArtworkID uint      `gorm:"column:artwork_id;index;not null" json:"artwork_id"`
	Reason    string    `gorm:"column:reason;type:varchar(255);not null" json:"reason"`
}

// TableName overrides default pluralised name.
func (DbVoteResetLog) TableName() string {
	return "vote_reset_logs"
}

// Transaction log event types.
const (
	EventUserRegistration = "User Registration"
	EventUserLogin        = "User Login"
	EventUserLogout       = "User Logout"
	EventArtworkUploaded  = "Artwork Uploaded"
	EventArtworkApproved  = "Artwork Approved"
)

// DbTransactionLog is an append-only record of notable platform events.
type DbTransactionLog struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `gorm:"column:timestamp" json:"timestamp"`
	EventType   string    `gorm:"column:event_type;type:varchar(50);not null" json:"event_type"`
	Description string    `gorm:"column:description;type:text;not null" json:"description"`
}

// TableName overrides default pluralised name.
func (DbTransactionLog) TableName() string {
	return "transaction_logs"
}
