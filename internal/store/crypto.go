package store

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
)

var ErrDecrypt = errors.New("failed to decrypt store value")

const (
	saltLength       = 16
	keyLength        = 32
	argonIterations  = 3
	argonMemory      = 64 * 1024
	argonParallelism = 2
)

// secretBox seals and opens store values with AES-256-GCM. The key is
// derived once per open database from the configured passphrase and the
// per-database salt via Argon2id.
type secretBox struct {
	aead cipher.AEAD
}

func newSecretBox(passphrase string, salt []byte) (*secretBox, error) {
	key := argon2.IDKey([]byte(passphrase), salt, argonIterations, argonMemory, argonParallelism, keyLength)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cipher")
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create GCM")
	}

	return &secretBox{aead: aead}, nil
}

func newSalt() ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "failed to generate salt")
	}
	return salt, nil
}

// seal returns nonce || ciphertext.
func (b *secretBox) seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, b.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, errors.Wrap(err, "failed to generate nonce")
	}
	return b.aead.Seal(nonce, nonce, plaintext, nil), nil
}

func (b *secretBox) open(sealed []byte) ([]byte, error) {
	if len(sealed) < b.aead.NonceSize() {
		return nil, ErrDecrypt
	}

	nonce, ciphertext := sealed[:b.aead.NonceSize()], sealed[b.aead.NonceSize():]
	plaintext, err := b.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecrypt
	}
	return plaintext, nil
}
