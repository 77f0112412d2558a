package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	manager := NewTokenManager("secret", time.Hour)

	raw, expiresAt, err := manager.Issue("user-1", true)
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := manager.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.True(t, claims.Staff)
}

func TestTokenManager_Parse(t *testing.T) {
	manager := NewTokenManager("secret", time.Hour)
	valid, _, err := manager.Issue("user-1", false)
	require.NoError(t, err)

	expiredManager := NewTokenManager("secret", time.Hour)
	expiredManager.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _, err := expiredManager.Issue("user-1", false)
	require.NoError(t, err)

	otherSecret, _, err := NewTokenManager("other", time.Hour).Issue("user-1", false)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "valid", raw: valid},
		{name: "expired", raw: expired, wantErr: ErrTokenExpired},
		{name: "wrong_secret", raw: otherSecret, wantErr: ErrInvalidToken},
		{name: "alg_none", raw: noneToken, wantErr: ErrInvalidToken},
		{name: "garbage", raw: "not-a-token", wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := manager.Parse(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "user-1", claims.Subject)
		})
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	require.True(t, CheckPassword(hash, "s3cret-pass"))
	require.False(t, CheckPassword(hash, "wrong"))
	require.False(t, CheckPassword("not-a-hash", "s3cret-pass"))
}
