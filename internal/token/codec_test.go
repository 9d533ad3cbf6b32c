package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testKey() []byte {
	return []byte("0123456789abcdef0123456789abcdef") // 32 байта
}

func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	codec, err := NewCodec(testKey())
	assert.NoError(t, err)

	for _, plaintext := range []string{
		"42",
		"b2a7c9f0-5f1e-4c2d-9e55-000000000001",
		"",
		"текст с юникодом",
	} {
		encoded, err := codec.Encode(plaintext)
		assert.NoError(t, err)
		assert.NotContains(t, encoded, "/", "токен должен быть безопасен для сегмента пути URL")
		assert.NotContains(t, encoded, "+")

		decoded, err := codec.Decode(encoded)
		assert.NoError(t, err)
		assert.Equal(t, plaintext, decoded)
	}
}

func TestCodec_TamperedToken(t *testing.T) {
	t.Parallel()

	codec, _ := NewCodec(testKey())
	encoded, err := codec.Encode("user-id-123")
	assert.NoError(t, err)

	// Портим последний символ
	tampered := encoded[:len(encoded)-1] + "A"
	if tampered == encoded {
		tampered = encoded[:len(encoded)-1] + "B"
	}

	_, err = codec.Decode(tampered)
	assert.ErrorIs(t, err, ErrDecryption)
}

func TestCodec_WrongKey(t *testing.T) {
	t.Parallel()

	codec, _ := NewCodec(testKey())
	other, _ := NewCodec([]byte("ffffffffffffffffffffffffffffffff"))

	encoded, err := codec.Encode("user-id-123")
	assert.NoError(t, err)

	_, err = other.Decode(encoded)
	assert.ErrorIs(t, err, ErrDecryption)
}

func TestCodec_GarbageInput(t *testing.T) {
	t.Parallel()

	codec, _ := NewCodec(testKey())

	_, err := codec.Decode("not-a-token")
	assert.ErrorIs(t, err, ErrDecryption)

	_, err = codec.Decode("%%%")
	assert.ErrorIs(t, err, ErrDecryption)
}

func TestNewCodec_BadKeyLength(t *testing.T) {
	t.Parallel()

	_, err := NewCodec([]byte("short"))
	assert.Error(t, err)
}
