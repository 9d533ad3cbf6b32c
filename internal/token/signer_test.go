package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const signerMaxAge = 360 * time.Second

func TestSigner_IssueVerify(t *testing.T) {
	t.Parallel()

	signer := NewSigner([]byte("signing-secret"), signerMaxAge)

	signed := signer.Issue("encrypted-user-id")
	payload, err := signer.Verify(signed, 0)

	assert.NoError(t, err)
	assert.Equal(t, "encrypted-user-id", payload)
}

func TestSigner_ExpiryWindow(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	signer := NewSigner([]byte("signing-secret"), signerMaxAge).
		WithClock(func() time.Time { return issuedAt })

	signed := signer.Issue("payload")

	// За секунду до границы окна - валиден
	early := signer.WithClock(func() time.Time { return issuedAt.Add(signerMaxAge - time.Second) })
	payload, err := early.Verify(signed, 0)
	assert.NoError(t, err)
	assert.Equal(t, "payload", payload)

	// Через секунду после - истек
	late := signer.WithClock(func() time.Time { return issuedAt.Add(signerMaxAge + time.Second) })
	_, err = late.Verify(signed, 0)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestSigner_TamperedSignature(t *testing.T) {
	t.Parallel()

	signer := NewSigner([]byte("signing-secret"), signerMaxAge)
	signed := signer.Issue("payload")

	parts := strings.Split(signed, ".")
	assert.Len(t, parts, 3)

	// Ломаем подпись
	parts[2] = "AAAA" + parts[2][4:]
	_, err := signer.Verify(strings.Join(parts, "."), 0)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	// Ломаем payload - подпись перестает сходиться
	parts = strings.Split(signed, ".")
	parts[0] = parts[0] + "x"
	_, err = signer.Verify(strings.Join(parts, "."), 0)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestSigner_WrongKey(t *testing.T) {
	t.Parallel()

	signer := NewSigner([]byte("key-one"), signerMaxAge)
	other := NewSigner([]byte("key-two"), signerMaxAge)

	signed := signer.Issue("payload")
	_, err := other.Verify(signed, 0)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestSigner_MalformedToken(t *testing.T) {
	t.Parallel()

	signer := NewSigner([]byte("signing-secret"), signerMaxAge)

	for _, bad := range []string{"", "just-one-part", "two.parts", "a.b.c.d"} {
		_, err := signer.Verify(bad, 0)
		assert.ErrorIs(t, err, ErrTokenInvalid, "token: %q", bad)
	}
}

func TestSigner_ExplicitMaxAgeOverridesDefault(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	signer := NewSigner([]byte("signing-secret"), signerMaxAge).
		WithClock(func() time.Time { return issuedAt })

	signed := signer.Issue("payload")

	// По умолчанию токен еще жив, но явное короткое окно его отклоняет
	later := signer.WithClock(func() time.Time { return issuedAt.Add(30 * time.Second) })
	_, err := later.Verify(signed, 10*time.Second)
	assert.ErrorIs(t, err, ErrTokenExpired)
}
