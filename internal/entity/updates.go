package entity

import "time"

// UserUpdates 用户更新字段
type UserUpdates struct {
	PasswordHash  *string
	EmailVerified *bool
	FirstName     *string
	LastName      *string
	Phone         *string
	Age           *int
	ClearAge      bool
	About         *string
	ProfilePhoto  *string
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u UserUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.PasswordHash != nil {
		updates["password_hash"] = *u.PasswordHash
	}
	if u.EmailVerified != nil {
		updates["email_verified"] = *u.EmailVerified
	}
	if u.FirstName != nil {
		updates["first_name"] = *u.FirstName
	}
	if u.LastName != nil {
		updates["last_name"] = *u.LastName
	}
	if u.Phone != nil {
		updates["phone"] = *u.Phone
	}
	if u.Age != nil {
		updates["age"] = *u.Age
	} else if u.ClearAge {
		updates["age"] = nil
	}
	if u.About != nil {
		updates["about"] = *u.About
	}
	if u.ProfilePhoto != nil {
		updates["profile_photo"] = *u.ProfilePhoto
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u UserUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}

// ArtworkUpdates 作品更新字段
type ArtworkUpdates struct {
	ModerationStatus *string
	Location         *string
	Identifier       *string
	QRCode           *string
	Archived         *bool
	ArchivedBy       *string
	ArchivedDate     *time.Time
	ClearArchival    bool
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u ArtworkUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.ModerationStatus != nil {
		updates["moderation_status"] = *u.ModerationStatus
	}
	if u.Location != nil {
		updates["location"] = *u.Location
	}
	if u.Identifier != nil {
		updates["identifier"] = *u.Identifier
	}
	if u.QRCode != nil {
		updates["qr_code"] = *u.QRCode
	}
	if u.Archived != nil {
		updates["archived"] = *u.Archived
	}
	if u.ArchivedBy != nil {
		updates["archived_by"] = *u.ArchivedBy
	}
	if u.ArchivedDate != nil {
		updates["archived_date"] = *u.ArchivedDate
	}
	if u.ClearArchival {
		updates["archived"] = false
		updates["archived_by"] = ""
		updates["archived_date"] = nil
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u ArtworkUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}
