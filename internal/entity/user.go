package entity

import "time"

// DbUser represents a persisted user account.
type DbUser struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Username      string    `gorm:"column:username;type:varchar(80);uniqueIndex;not null" json:"username"`
	Email         string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash  string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	IsSuperuser   bool      `gorm:"column:is_superuser;not null;default:false" json:"is_superuser"`
	EmailVerified bool      `gorm:"column:email_verified;not null;default:false" json:"email_verified"`
	FirstName     string    `gorm:"column:first_name;type:varchar(80)" json:"first_name"`
	LastName      string    `gorm:"column:last_name;type:varchar(80)" json:"last_name"`
	Phone         string    `gorm:"column:phone;type:varchar(20)" json:"phone"`
	Age           *int      `gorm:"column:age" json:"age,omitempty"`
	About         string    `gorm:"column:about;type:text" json:"about"`
	ProfilePhoto  string    `gorm:"column:profile_photo;type:varchar(255)" json:"profile_photo"`
}

// TableName overrides default pluralised name.
func (DbUser) TableName() string {
	return "users"
}

// DisplayName returns the name shown next to a user's actions.
func (u *DbUser) DisplayName() string {
	if u == nil {
		return ""
	}
	return u.Username
}

// UserSummary is a lightweight user description returned to clients.
type UserSummary struct {
	ID            uint      `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	IsSuperuser   bool      `json:"is_superuser"`
	EmailVerified bool      `json:"email_verified"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Phone         string    `json:"phone"`
	Age           *int      `json:"age,omitempty"`
	About         string    `json:"about"`
	ProfilePhoto  string    `json:"profile_photo"`
	CreatedAt     time.Time `json:"created_at"`
}

// MakeUserSummary converts a persisted user into its client view.
func MakeUserSummary(user *DbUser) UserSummary {
	if user == nil {
		return UserSummary{}
	}
	return UserSummary{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		IsSuperuser:   user.IsSuperuser,
		EmailVerified: user.EmailVerified,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Phone:         user.Phone,
		Age:           user.Age,
		About:         user.About,
		ProfilePhoto:  user.ProfilePhoto,
		CreatedAt:     user.CreatedAt,
	}
}

type AuthRegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type AuthLoginRequest struct {
	// Login accepts either the username or the email address.
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      UserSummary `json:"user"`
}

type PasswordResetRequest struct {
	Token           string `json:"token" binding:"required"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type ProfileUpdateRequest struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Age         *int    `json:"age,omitempty"`
	About       *string `json:"about,omitempty"`
	OldPassword *string `json:"old_password,omitempty"`
	NewPassword *string `json:"new_password,omitempty"`
}
