package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sigbox/internal/domain"
)

func TestParse_CopiesInput(t *testing.T) {
	raw := make([]byte, domain.KeySize)
	raw[0] = 7
	k, err := domain.ParseSigningKey(raw)
	require.NoError(t, err)
	raw[0] = 0
	assert.Equal(t, byte(7), k[0])
}

func TestParse_WrongLength(t *testing.T) {
	_, err := domain.ParseBoxPublicKey(make([]byte, 16))
	var le *domain.LengthError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "box public key", le.Role)
	assert.Equal(t, 32, le.Want)
	assert.Equal(t, 16, le.Got)
	assert.EqualError(t, err, "box public key: want 32 bytes, got 16")

	_, err = domain.ParseSignature(make([]byte, 63))
	assert.Error(t, err)
	_, err = domain.ParseNonce(make([]byte, 23))
	assert.Error(t, err)
}
