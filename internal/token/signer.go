package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrTokenExpired - с момента выпуска прошло больше max age
	ErrTokenExpired = errors.New("token: signed token expired")
	// ErrTokenInvalid - подпись не сходится или формат нарушен
	ErrTokenInvalid = errors.New("token: signed token invalid")
)

// Signer выпускает и проверяет подписанные токены с меткой времени.
// Формат: payload.timestamp.signature (каждый сегмент base64url).
// Состояния нет: выпущенный токен действует для любого держателя
// до истечения окна - это осознанный компромисс, списков отзыва нет.
type Signer struct {
	key    []byte
	maxAge time.Duration
	now    func() time.Time
}

// NewSigner создает подписанта с ключом HMAC и окном действия по умолчанию.
func NewSigner(key []byte, maxAge time.Duration) *Signer {
	return &Signer{
		key:    key,
		maxAge: maxAge,
		now:    time.Now,
	}
}

// WithClock подменяет источник времени (для тестов с фиксированными часами)
func (s *Signer) WithClock(now func() time.Time) *Signer {
	clone := *s
	clone.now = now
	return &clone
}

// MaxAge возвращает окно действия по умолчанию
func (s *Signer) MaxAge() time.Duration {
	return s.maxAge
}

// Issue подписывает payload текущей меткой времени
func (s *Signer) Issue(payload string) string {
	encoded := base64.RawURLEncoding.EncodeToString([]byte(payload))
	ts := strconv.FormatInt(s.now().Unix(), 10)
	sig := s.sign(encoded + "." + ts)
	return fmt.Sprintf("%s.%s.%s", encoded, ts, sig)
}

// Verify проверяет подпись и возраст токена и возвращает payload.
// maxAge <= 0 означает "использовать окно по умолчанию".
func (s *Signer) Verify(signed string, maxAge time.Duration) (string, error) {
	parts := strings.Split(signed, ".")
	if len(parts) != 3 {
		return "", ErrTokenInvalid
	}
	encoded, ts, sig := parts[0], parts[1], parts[2]

	expected := s.sign(encoded + "." + ts)
	if !hmac.Equal([]byte(expected), []byte(sig)) {
		return "", ErrTokenInvalid
	}

	issuedAt, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return "", ErrTokenInvalid
	}

	if maxAge <= 0 {
		maxAge = s.maxAge
	}
	if s.now().Sub(time.Unix(issuedAt, 0)) > maxAge {
		return "", ErrTokenExpired
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrTokenInvalid
	}
	return string(payload), nil
}

func (s *Signer) sign(data string) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(data))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
