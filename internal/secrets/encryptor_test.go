package secrets

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "vc-drover.io/drover/internal/pkg/errors"
)

func testKey() []byte {
	return bytes.Repeat([]byte{0x42}, 32)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	t.Parallel()

	enc, err := NewEncryptor(testKey())
	require.NoError(t, err)

	ciphertext, err := enc.Encrypt("vcenter-password")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ciphertext, "v1:"))
	assert.NotContains(t, ciphertext, "vcenter-password")

	plain, err := enc.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "vcenter-password", plain)
}

func TestEncryptIsNonDeterministic(t *testing.T) {
	t.Parallel()

	enc, err := NewEncryptor(testKey())
	require.NoError(t, err)

	first, err := enc.Encrypt("secret")
	require.NoError(t, err)
	second, err := enc.Encrypt("secret")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestDecryptRejectsBadInput(t *testing.T) {
	t.Parallel()

	enc, err := NewEncryptor(testKey())
	require.NoError(t, err)

	t.Run("unknown scheme", func(t *testing.T) {
		_, err := enc.Decrypt("v9:whatever")
		assert.Equal(t, "SECRET_SCHEME_UNKNOWN", apperrors.CodeOf(err))
	})

	t.Run("not base64", func(t *testing.T) {
		_, err := enc.Decrypt("v1:!!not-base64!!")
		assert.Equal(t, "SECRET_CORRUPT", apperrors.CodeOf(err))
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := enc.Decrypt("v1:" + base64.StdEncoding.EncodeToString([]byte("short")))
		assert.Equal(t, "SECRET_CORRUPT", apperrors.CodeOf(err))
	})

	t.Run("tampered", func(t *testing.T) {
		ciphertext, err := enc.Encrypt("secret")
		require.NoError(t, err)
		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(ciphertext, "v1:"))
		require.NoError(t, err)
		raw[len(raw)-1] ^= 0xff
		_, err = enc.Decrypt("v1:" + base64.StdEncoding.EncodeToString(raw))
		assert.Equal(t, "SECRET_CORRUPT", apperrors.CodeOf(err))
	})

	t.Run("wrong key", func(t *testing.T) {
		other, err := NewEncryptor(bytes.Repeat([]byte{0x24}, 32))
		require.NoError(t, err)
		ciphertext, err := enc.Encrypt("secret")
		require.NoError(t, err)
		_, err = other.Decrypt(ciphertext)
		assert.Error(t, err)
	})
}

func TestKeyValidation(t *testing.T) {
	t.Parallel()

	_, err := NewEncryptor([]byte("too-short"))
	assert.Error(t, err)

	_, err = NewEncryptorFromBase64("not base64 at all!!!")
	assert.Error(t, err)

	enc, err := NewEncryptorFromBase64(base64.StdEncoding.EncodeToString(testKey()))
	require.NoError(t, err)
	assert.NotNil(t, enc)
}
