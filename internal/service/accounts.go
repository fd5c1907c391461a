package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"pixelwall/internal/auth"
	"pixelwall/internal/entity"
	"pixelwall/internal/imaging"
	"pixelwall/internal/model"
	"pixelwall/internal/notify"
	"pixelwall/internal/storage"
)

const profilePhotoSize = 90

// AccountService 用户账户业务: 注册/验证/登录/资料维护
type AccountService struct {
	repo     model.Repository
	manager  *auth.Manager
	notifier notify.Notifier
	store    storage.Storage
	tokenTTL time.Duration
	baseURL  string
}

func NewAccountService(repo model.Repository, manager *auth.Manager, notifier notify.Notifier, store storage.Storage, tokenTTL time.Duration, baseURL string) *AccountService {
	return &AccountService{
		repo:     repo,
		manager:  manager,
		notifier: notifier,
		store:    store,
		tokenTTL: tokenTTL,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

// Register creates an unverified account and emails a verification link.
// Username and email must both be unused.
func (s *AccountService) Register(ctx context.Context, req entity.AuthRegisterRequest) (*entity.DbUser, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if username == "" || email == "" {
		return nil, entity.ErrInvalidAction
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	exists, err := s.repo.IdentityExists(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, entity.ErrDuplicateIdentity
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.DbUser{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		// 唯一索引兜底, 并发注册同名账户
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, entity.ErrDuplicateIdentity
		}
		return nil, err
	}

	s.logEvent(ctx, entity.EventUserRegistration, fmt.Sprintf("User '%s' registered.", user.Username))
	s.sendVerificationMail(ctx, user)
	return user, nil
}

func (s *AccountService) sendVerificationMail(ctx context.Context, user *entity.DbUser) {
	token, err := s.manager.GenerateActionToken(user.Email, auth.PurposeVerifyEmail, s.tokenTTL)
	if err != nil {
		logrus.WithError(err).Warn("generate verification token failed")
		return
	}
	link := fmt.Sprintf("%s/api/auth/verify-email?token=%s", s.baseURL, token)
	body := fmt.Sprintf("Hello %s,\r\n\r\nPlease verify your email address by visiting:\r\n%s\r\n\r\nThe link expires in %d minutes.\r\n", user.Username, link, int(s.tokenTTL.Minutes()))
	if err := s.notifier.Send(ctx, user.Email, "Verify your email address", body); err != nil {
		// 邮件失败不回滚注册, 用户可重新请求验证邮件
		logrus.WithError(err).WithField("email", user.Email).Warn("send verification mail failed")
	}
}

// ResendVerification sends a fresh verification link for an unverified account.
func (s *AccountService) ResendVerification(ctx context.Context, email string) error {
	user, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return translateNotFound(err)
	}
	if user.EmailVerified {
		return entity.ErrInvalidState
	}
	s.sendVerificationMail(ctx, user)
	return nil
}

// VerifyEmail consumes a verify-email token and marks the account verified.
func (s *AccountService) VerifyEmail(ctx context.Context, token string) (*entity.DbUser, error) {
	email, err := s.manager.ParseActionToken(token, auth.PurposeVerifyEmail)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, translateNotFound(err)
	}
	if user.EmailVerified {
		return user, nil
	}
	verified := true
	if err := s.repo.UpdateUser(ctx, user.ID, entity.UserUpdates{EmailVerified: &verified}); err != nil {
		return nil, err
	}
	user.EmailVerified = true
	return user, nil
}

// Login authenticates by username or email. An unverified account is rejected
// before the password is checked so the caller can prompt for re-verification.
func (s *AccountService) Login(ctx context.Context, req entity.AuthLoginRequest) (*entity.AuthResponse, error) {
	user, err := s.repo.GetUserByLogin(ctx, strings.TrimSpace(req.Login))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.EmailVerified {
		return nil, entity.ErrEmailNotVerified
	}
	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, entity.ErrInvalidCredentials
	}

	token, expiresAt, err := s.manager.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	s.logEvent(ctx, entity.EventUserLogin, fmt.Sprintf("User '%s' logged in.", user.Username))
	return &entity.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      entity.MakeUserSummary(user),
	}, nil
}

// Logout only records the event; the bearer token stays valid until expiry.
func (s *AccountService) Logout(ctx context.Context, actor *entity.DbUser) {
	if actor == nil {
		return
	}
	s.logEvent(ctx, entity.EventUserLogout, fmt.Sprintf("User '%s' logged out.", actor.Username))
}

// RequestPasswordReset mails a reset link to the authenticated user's own
// registered address. There is no logged-out variant.
func (s *AccountService) RequestPasswordReset(ctx context.Context, actor *entity.DbUser) error {
	if actor == nil || actor.ID == 0 {
		return entity.ErrUnauthorized
	}

	token, err := s.manager.GenerateActionToken(actor.Email, auth.PurposeResetPassword, s.tokenTTL)
	if err != nil {
		return err
	}
	link := fmt.Sprintf("%s/api/auth/reset-password?token=%s", s.baseURL, token)
	body := fmt.Sprintf("Hello %s,\r\n\r\nA password reset was requested for your account. Visit:\r\n%s\r\n\r\nIf you did not request this, ignore this message.\r\n", actor.Username, link)
	if err := s.notifier.Send(ctx, actor.Email, "Password reset", body); err != nil {
		logrus.WithError(err).WithField("email", actor.Email).Warn("send password reset mail failed")
	}
	return nil
}

// ResetPassword consumes a reset-password token and sets a new password.
func (s *AccountService) ResetPassword(ctx context.Context, req entity.PasswordResetRequest) error {
	if req.Password != req.ConfirmPassword {
		return fmt.Errorf("%w: passwords do not match", entity.ErrInvalidAction)
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return err
	}

	email, err := s.manager.ParseActionToken(req.Token, auth.PurposeResetPassword)
	if err != nil {
		return err
	}
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return translateNotFound(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}
	return s.repo.UpdateUser(ctx, user.ID, entity.UserUpdates{PasswordHash: &hash})
}

// UpdateProfile applies partial profile edits. Changing the password requires
// the current password to verify.
func (s *AccountService) UpdateProfile(ctx context.Context, actor *entity.DbUser, req entity.ProfileUpdateRequest) (*entity.DbUser, error) {
	if actor == nil {
		return nil, entity.ErrUnauthorized
	}

	updates := entity.UserUpdates{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		About:     req.About,
	}
	if req.Age != nil {
		if *req.Age <= 0 {
			updates.ClearAge = true
		} else {
			updates.Age = req.Age
		}
	}

	if req.NewPassword != nil && *req.NewPassword != "" {
		if req.OldPassword == nil || !auth.VerifyPassword(*req.OldPassword, actor.PasswordHash) {
			return nil, entity.ErrInvalidCredentials
		}
		if err := auth.ValidatePassword(*req.NewPassword); err != nil {
			return nil, err
		}
		hash, err := auth.HashPassword(*req.NewPassword)
		if err != nil {
			return nil, err
		}
		updates.PasswordHash = &hash
	}

	if !updates.IsEmpty() {
		if err := s.repo.UpdateUser(ctx, actor.ID, updates); err != nil {
			return nil, err
		}
	}
	return s.repo.GetUserByID(ctx, actor.ID)
}

// SetProfilePhoto normalizes the uploaded image to a square thumbnail and
// stores it under a per-user key so re-uploads replace the old photo.
func (s *AccountService) SetProfilePhoto(ctx context.Context, actor *entity.DbUser, filename string, r io.Reader) (*entity.DbUser, error) {
	if actor == nil {
		return nil, entity.ErrUnauthorized
	}

	thumb, err := imaging.Thumbnail(filename, r, profilePhotoSize, profilePhotoSize)
	if err != nil {
		return nil, err
	}

	key, err := s.store.Save(ctx, thumb, storage.SaveOptions{
		Category:  "profile_photos",
		Extension: "png",
		BaseName:  fmt.Sprintf("user_%d", actor.ID),
	})
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateUser(ctx, actor.ID, entity.UserUpdates{ProfilePhoto: &key}); err != nil {
		return nil, err
	}
	return s.repo.GetUserByID(ctx, actor.ID)
}

func (s *AccountService) logEvent(ctx context.Context, eventType, description string) {
	if err := s.repo.AppendTransactionLog(ctx, eventType, description); err != nil {
		logrus.WithError(err).WithField("event", eventType).Warn("append transaction log failed")
	}
}
