package entity

import "time"

// Moderation states an artwork moves through.
const (
	StatusUnmoderated = "unmoderated"
	StatusPending     = "pending"
	StatusModerated   = "moderated"
)

// LocationNone is the sentinel for artwork without an assigned display location.
const LocationNone = "none"

// DbArtwork represents an uploaded piece of pixel art together with its
// moderation lifecycle metadata. The normalised PNG payload is stored inline.
type DbArtwork struct {
	ID               uint       `gorm:"primarykey" json:"id"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	Name             string     `gorm:"column:name;type:varchar(120);not null" json:"name"`
	ImageFile        string     `gorm:"column:image_file;type:varchar(120);not null" json:"image_file"`
	PixelData        []byte     `gorm:"column:pixel_data" json:"-"`
	ModerationStatus string     `gorm:"column:moderation_status;type:varchar(20);index;not null;default:unmoderated" json:"moderation_status"`
	Location         string     `gorm:"column:location;type:varchar(50);not null;default:none" json:"location"`
	Archived         bool       `gorm:"column:archived;not null;default:false" json:"archived"`
	ArchivedBy       string     `gorm:"column:archived_by;type:varchar(80)" json:"archived_by,omitempty"`
	ArchivedDate     *time.Time `gorm:"column:archived_date" json:"archived_date,omitempty"`
	UserID           uint       `gorm:"column:user_id;index;not null" json:"user_id"`
	Identifier       string     `gorm:"column:identifier;type:varchar(50)" json:"identifier,omitempty"`
	QRCode           string     `gorm:"column:qr_code;type:varchar(255)" json:"qr_code,omitempty"`
}

// TableName overrides default pluralised name.
func (DbArtwork) TableName() string {
	return "artworks"
}

// ArtworkSummary is the client view of an artwork row without the binary payload.
type ArtworkSummary struct {
	ID               uint       `json:"id"`
	Name             string     `json:"name"`
	ImageFile        string     `json:"image_file"`
	ModerationStatus string     `json:"moderation_status"`
	Location         string     `json:"location"`
	Archived         bool       `json:"archived"`
	ArchivedBy       string     `json:"archived_by,omitempty"`
	ArchivedDate     *time.Time `json:"archived_date,omitempty"`
	UserID           uint       `json:"user_id"`
	Identifier       string     `json:"identifier,omitempty"`
	QRCode           string     `json:"qr_code,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// MakeArtworkSummary converts a persisted artwork into its client view.
func MakeArtworkSummary(art *DbArtwork) ArtworkSummary {
	if art == nil {
		return ArtworkSummary{}
	}
	return ArtworkSummary{
		ID:               art.ID,
		Name:             art.Name,
		ImageFile:        art.ImageFile,
		ModerationStatus: art.ModerationStatus,
		Location:         art.Location,
		Archived:         art.Archived,
		ArchivedBy:       art.ArchivedBy,
		ArchivedDate:     art.ArchivedDate,
		UserID:           art.UserID,
		Identifier:       art.Identifier,
		QRCode:           art.QRCode,
		CreatedAt:        art.CreatedAt,
	}
}

// GalleryQuery describes the viewer-dependent gallery filter.
type GalleryQuery struct {
	// Authenticated viewers also see moderated artwork without a location.
	Authenticated bool
	// Location, when non-empty, must match exactly (case-sensitive).
	Location string
}

// GalleryItem is one visible gallery row with its current vote total.
type GalleryItem struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	ImageFile  string `json:"image_file"`
	Location   string `json:"location"`
	UserID     uint   `json:"user_id"`
	Identifier string `json:"identifier,omitempty"`
	QRCode     string `json:"qr_code,omitempty"`
	VoteTotal  int64  `json:"vote_total"`
}
