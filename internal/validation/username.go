package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/iudanet/fieldsync/internal/models"
)

var (
	ErrEmptyUsername = errors.New("username cannot be empty")
	ErrInvalidRole   = errors.New("invalid role")
)

// UsernamePattern определяет допустимый формат username техника
// Только латинские буквы (a-z, A-Z), цифры (0-9), нижнее подчеркивание (_)
// Длина: 3-32 символа
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

const (
	// MinUsernameLen минимальная длина username
	MinUsernameLen = 3
	// MaxUsernameLen максимальная длина username
	MaxUsernameLen = 32
)

// ValidateUsername проверяет, что username соответствует требованиям
// Формат: только латинские буквы (a-z, A-Z), цифры (0-9), нижнее подчеркивание (_)
// Длина: 3-32 символа
func ValidateUsername(username string) error {
	if username == "" {
		return ErrEmptyUsername
	}

	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)")
	}

	return nil
}

// ValidateUser проверяет пользователя перед сохранением или отправкой на портал
func ValidateUser(u models.User) error {
	if err := ValidateUsername(u.Username); err != nil {
		return err
	}
	if strings.TrimSpace(u.DisplayName) == "" {
		return fmt.Errorf("display name cannot be empty")
	}
	if !u.Role.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, u.Role)
	}
	return nil
}
