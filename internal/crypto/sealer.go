// Package crypto шифрует сохраняемые данные ключом, выведенным из мастер-пароля.
package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	// Константы для Argon2id
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // 64 MB
	argon2Threads = 4
	argon2KeyLen  = 32 // 256 бит для AES-256

	saltLength  = 16
	nonceLength = 12
)

// magic помечает запечатанные данные; последний байт - версия формата.
var magic = []byte("AKS\x01")

var (
	ErrEmptyPassword = errors.New("master password is empty")
	ErrMalformed     = errors.New("sealed data is malformed")
	ErrWrongPassword = errors.New("wrong master password or corrupted data")
)

// Sealer шифрует и расшифровывает данные AES-256-GCM.
// Для каждой операции Seal генерируется новая соль, формат:
// magic | salt | nonce | ciphertext.
type Sealer struct {
	password []byte
}

func NewSealer(password string) (*Sealer, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}
	return &Sealer{password: []byte(password)}, nil
}

// IsSealed сообщает, выглядят ли данные как результат Seal.
func IsSealed(data []byte) bool {
	return bytes.HasPrefix(data, magic)
}

func (s *Sealer) Seal(plaintext []byte) ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("ошибка генерации соли: %w", err)
	}

	gcm, err := s.aead(salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, nonceLength)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("ошибка генерации nonce: %w", err)
	}

	out := make([]byte, 0, len(magic)+saltLength+nonceLength+len(plaintext)+gcm.Overhead())
	out = append(out, magic...)
	out = append(out, salt...)
	out = append(out, nonce...)
	return gcm.Seal(out, nonce, plaintext, magic), nil
}

func (s *Sealer) Open(data []byte) ([]byte, error) {
	if !IsSealed(data) || len(data) < len(magic)+saltLength+nonceLength {
		return nil, ErrMalformed
	}

	rest := data[len(magic):]
	salt, rest := rest[:saltLength], rest[saltLength:]
	nonce, ciphertext := rest[:nonceLength], rest[nonceLength:]

	gcm, err := s.aead(salt)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, magic)
	if err != nil {
		return nil, ErrWrongPassword
	}
	return plaintext, nil
}

func (s *Sealer) aead(salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey(s.password, salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
	defer clearMemory(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания шифра: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания GCM: %w", err)
	}
	return gcm, nil
}

// clearMemory затирает ключ после использования
func clearMemory(data []byte) {
	for i := range data {
		data[i] = 0
	}
}
