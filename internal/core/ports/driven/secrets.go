package driven

// SecretBox encrypts configuration secrets at rest.
type SecretBox interface {
	// Encrypt seals plaintext into a printable ciphertext.
	Encrypt(plaintext string) (string, error)

	// Decrypt opens a ciphertext produced by Encrypt.
	// Failures wrap domain.ErrDecrypt.
	Decrypt(ciphertext string) (string, error)
}
