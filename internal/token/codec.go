package token

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

// ErrDecryption - токен поврежден, подделан или ключ не подходит
var ErrDecryption = errors.New("token: decryption failed")

// Codec - обратимое шифрование идентификатора симметричным ключом.
// Результат безопасен для вставки в сегмент пути URL.
type Codec struct {
	aead cipher.AEAD
}

// NewCodec создает кодек на AES-256-GCM. Ключ - ровно 32 байта.
func NewCodec(key []byte) (*Codec, error) {
	if len(key) != 32 {
		return nil, errors.New("token: codec key must be exactly 32 bytes")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Codec{aead: aead}, nil
}

// Encode шифрует plaintext и возвращает base64url-строку nonce|ciphertext.
func (c *Codec) Encode(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Decode расшифровывает токен, созданный Encode.
// Любая порча данных или чужой ключ дают ErrDecryption.
func (c *Codec) Decode(encoded string) (string, error) {
	sealed, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrDecryption
	}

	nonceSize := c.aead.NonceSize()
	if len(sealed) < nonceSize {
		return "", ErrDecryption
	}

	nonce, ciphertext := sealed[:nonceSize], sealed[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		// GCM аутентифицирует данные: подмена и неверный ключ неразличимы
		return "", ErrDecryption
	}

	return string(plaintext), nil
}
