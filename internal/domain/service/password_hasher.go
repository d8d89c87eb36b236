// Package service declares the ports that use cases reach infrastructure
// through: credentials, tokens, push delivery, media and events.
package service

// PasswordHasher owns the password policy and the stored hash format.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash without leaking timing.
	Check(password, hash string) bool

	// ValidatePasswordStrength returns ErrPasswordStrength naming the broken rules.
	ValidatePasswordStrength(password string) error
}
