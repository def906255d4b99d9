package service

// PasswordHasher defines the interface for password hashing. Sign-in is
// mocked upstream, but email passwords are still hashed at rest.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool
}
