// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"marketplace/config"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
)

const defaultMinPasswordLength = 8

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
	}
	policy := config.PasswordStrengthConfig{MinLength: defaultMinPasswordLength}
	if cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}

	return newBcryptHasher(cost, policy)
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost and the default policy.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return newBcryptHasher(cost, config.PasswordStrengthConfig{MinLength: defaultMinPasswordLength})
}

func newBcryptHasher(cost int, policy config.PasswordStrengthConfig) *bcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if policy.MinLength <= 0 {
		policy.MinLength = defaultMinPasswordLength
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength enforces the configured password policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	length := len([]rune(password))
	if length < h.policy.MinLength {
		return h.weak("password must be at least %d characters long", h.policy.MinLength)
	}
	if h.policy.MaxLength > 0 && length > h.policy.MaxLength {
		return h.weak("password must be at most %d characters long", h.policy.MaxLength)
	}
	if h.policy.RequireLowercase && !h.hasLowercase(password) {
		return h.weak("password must contain at least one lowercase letter")
	}
	if h.policy.RequireUppercase && !h.hasUppercase(password) {
		return h.weak("password must contain at least one uppercase letter")
	}
	if h.policy.RequireNumbers && !h.hasNumbers(password) {
		return h.weak("password must contain at least one number")
	}
	if h.policy.RequireSpecial && !h.hasSpecialChars(password) {
		return h.weak("password must contain at least one special character")
	}
	if h.containsForbiddenWords(password, h.policy.ForbiddenWords) {
		return h.weak("password contains forbidden words")
	}

	return nil
}

func (h *bcryptHasher) weak(format string, args ...any) error {
	return domainerrors.ErrPasswordStrength.WithDetails(fmt.Sprintf(format, args...))
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}) >= 0
}

func (h *bcryptHasher) containsForbiddenWords(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, word := range words {
		if word != "" && strings.Contains(lower, strings.ToLower(word)) {
			return true
		}
	}

	return false
}
