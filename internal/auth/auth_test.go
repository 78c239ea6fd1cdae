package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/prefin/internal/apperr"
)

func newTestCodec(t *testing.T, now *time.Time) *TokenCodec {
	t.Helper()
	codec, err := NewTokenCodec("test-secret", DefaultTokenTTL)
	require.NoError(t, err)
	return codec.WithClock(func() time.Time { return *now })
}

func TestNewTokenCodec_EmptySecret(t *testing.T) {
	codec, err := NewTokenCodec("", time.Hour)
	assert.Error(t, err)
	assert.Nil(t, codec)
}

func TestTokenCodec_RoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	codec := newTestCodec(t, &now)

	token, err := codec.Issue(7)
	require.NoError(t, err)

	userID, err := codec.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), userID)
}

func TestTokenCodec_ValidUntilWindowEnds(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	codec := newTestCodec(t, &now)

	token, err := codec.Issue(7)
	require.NoError(t, err)

	now = now.Add(DefaultTokenTTL - time.Minute)
	userID, err := codec.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), userID)

	now = now.Add(2 * time.Minute)
	_, err = codec.Verify(token)
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
	assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	now := time.Now()
	codec := newTestCodec(t, &now)
	other, err := NewTokenCodec("another-secret", DefaultTokenTTL)
	require.NoError(t, err)

	token, err := other.Issue(3)
	require.NoError(t, err)

	_, err = codec.Verify(token)
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestTokenCodec_RejectsOtherAlgorithms(t *testing.T) {
	now := time.Now()
	codec := newTestCodec(t, &now)

	claims := Claims{
		UserID: 3,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = codec.Verify(unsigned)
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestTokenCodec_Garbage(t *testing.T) {
	now := time.Now()
	codec := newTestCodec(t, &now)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := codec.Verify(token)
		assert.True(t, errors.Is(err, apperr.ErrInvalidToken), token)
	}
}

func TestPassword_HashAndCheck(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)

	assert.NotEqual(t, "hunter22", hash)
	assert.True(t, CheckPassword(hash, "hunter22"))
	assert.False(t, CheckPassword(hash, "hunter23"))

	again, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "hashes are salted")
}

func TestAvatarForGender(t *testing.T) {
	assert.Equal(t, AvatarBoy, AvatarForGender(GenderMale))
	assert.Equal(t, AvatarGirl, AvatarForGender(GenderFemale))
	assert.Equal(t, AvatarDefault, AvatarForGender(GenderOther))
	assert.Equal(t, AvatarDefault, AvatarForGender(""))
}

func TestParseGender(t *testing.T) {
	g, err := ParseGender("")
	assert.NoError(t, err)
	assert.Equal(t, GenderOther, g)

	g, err = ParseGender("female")
	assert.NoError(t, err)
	assert.Equal(t, GenderFemale, g)

	_, err = ParseGender("robot")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
