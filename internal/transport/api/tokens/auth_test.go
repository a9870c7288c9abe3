package tokens

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsdevblog/paywallet/internal/domain"
)

func TestUserJWT(t *testing.T) {
	key := []byte("secret")
	userID := uuid.New()

	token, err := GenerateUserJWT(userID, domain.RoleAdmin, time.Hour, key)
	require.NoError(t, err)

	claims, validateErr := ValidateUserJWT(token, key)
	require.NoError(t, validateErr)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)

	_, wrongKeyErr := ValidateUserJWT(token, []byte("other"))
	require.Error(t, wrongKeyErr)

	expired, expiredErr := GenerateUserJWT(userID, domain.RoleUser, -time.Minute, key)
	require.NoError(t, expiredErr)
	_, validateExpiredErr := ValidateUserJWT(expired, key)
	require.ErrorIs(t, validateExpiredErr, ErrTokenExpired)
}
