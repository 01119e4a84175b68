package security

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"errors"

	"golang.org/x/crypto/pbkdf2"
)

const (
	kdfIterations = 4096
	keySize       = 32
)

var ErrShortCiphertext = errors.New("ciphertext shorter than nonce")

// DeriveKey menghasilkan kunci 32-byte dari password dan salt
func DeriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, kdfIterations, keySize, sha256.New)
}

// FrameCipher adalah AES-GCM untuk satu kunci. Satu instance dipakai untuk
// semua paket dalam satu track; format paket: [nonce][ciphertext+tag].
// Renderer hanya membaca, jadi hanya sisi Open yang ada.
type FrameCipher struct {
	aead cipher.AEAD
}

func NewFrameCipher(key []byte) (*FrameCipher, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &FrameCipher{aead: aead}, nil
}

func (c *FrameCipher) Open(sealed []byte) ([]byte, error) {
	n := c.aead.NonceSize()
	if len(sealed) < n {
		return nil, ErrShortCiphertext
	}
	return c.aead.Open(nil, sealed[:n], sealed[n:], nil)
}

// Decrypt: Open sekali pakai.
func Decrypt(data, key []byte) ([]byte, error) {
	c, err := NewFrameCipher(key)
	if err != nil {
		return nil, err
	}
	return c.Open(data)
}
