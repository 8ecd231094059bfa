package service

// PasswordHasher defines the interface for password hashing and verification.
// It backs the local identity provider used when no remote provider is configured.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool
}
