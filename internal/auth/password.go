package auth

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"pixelwall/internal/entity"
)

const defaultBcryptCost = bcrypt.DefaultCost

// MinPasswordLength 用户可自选密码的最小长度
const MinPasswordLength = 8

// ValidatePassword 校验用户提交的新密码。引导创建的账户不经过此校验。
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", entity.ErrInvalidAction, MinPasswordLength)
	}
	return nil
}

// HashPassword 对明文密码进行哈希处理
func HashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password must not be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), defaultBcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword 验证候选密码是否与存储的哈希值匹配
func VerifyPassword(candidate, hash string) bool {
	if strings.TrimSpace(hash) == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}
