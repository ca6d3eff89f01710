package utils

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserContextRoundTrip(t *testing.T) {
	userID := uuid.New()
	ctx := SetUserContext(context.Background(), userID, "alice", "moderator")

	gotID, ok := GetUserIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, userID, gotID)

	username, ok := GetUsernameFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "alice", username)

	role, ok := GetRoleFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "moderator", role)
}

func TestUserContextEmpty(t *testing.T) {
	ctx := context.Background()

	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)

	_, ok = GetUsernameFromContext(ctx)
	assert.False(t, ok)

	_, ok = GetRoleFromContext(ctx)
	assert.False(t, ok)
}
