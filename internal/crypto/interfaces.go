package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns the symmetric primitives of the vault. It knows
// nothing about records, storage or organizations; its only job is to derive,
// generate and apply keys.
//
// Key flow:
//
//	Salt     = GenerateSalt()                        (step 1)
//	UserKey  = DeriveKey(masterPassword, salt)       (step 2)
//	OrgKey   = GenerateKey()                         (per organization)
//	Blob     = EncryptString(plain, key)             (nonce || ciphertext, base64)
type KeyChainService interface {
	// GenerateSalt returns 16 random bytes. The salt is not secret.
	GenerateSalt() ([]byte, error)

	// GenerateKey returns a random 256-bit symmetric key.
	GenerateKey() ([]byte, error)

	// DeriveKey derives a 256-bit key from the master password and salt
	// with Argon2id. The result never leaves process memory.
	DeriveKey(masterPassword string, salt []byte) []byte

	// EncryptString encrypts plain with AES-256-GCM under key and returns
	// base64(nonce || ciphertext).
	EncryptString(plain string, key []byte) (string, error)

	// DecryptString reverses EncryptString. Returns an error if the blob is
	// malformed or authentication fails (wrong key, tampered data).
	DecryptString(encryptedB64 string, key []byte) (string, error)
}
