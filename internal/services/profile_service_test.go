package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heritage-server/internal/schemas"
)

func seedAccount(t *testing.T, accounts *memoryAccounts, email string) *schemas.Account {
	t.Helper()
	account := &schemas.Account{
		ID:         uuid.New(),
		Username:   "maya",
		Email:      email,
		IsVerified: true,
		Interests:  []string{},
		Bookmarks:  []string{},
	}
	require.NoError(t, accounts.Insert(context.Background(), account))
	return account
}

func TestProfileService_UpdateProfile(t *testing.T) {
	accounts := newMemoryAccounts()
	maya := seedAccount(t, accounts, "maya@x.com")
	seedAccount(t, accounts, "ravi@x.com")
	service := NewProfileService(accounts)

	username := "maya_k"
	updated, err := service.UpdateProfile(context.Background(), maya.ID, &schemas.UpdateProfileRequest{
		Username:  &username,
		Interests: []string{"forts", "temples"},
	})
	require.NoError(t, err)
	assert.Equal(t, "maya_k", updated.Username)
	assert.Equal(t, "maya@x.com", updated.Email)
	assert.Equal(t, []string{"forts", "temples"}, updated.Interests)

	taken := "RAVI@x.com"
	_, err = service.UpdateProfile(context.Background(), maya.ID, &schemas.UpdateProfileRequest{Email: &taken})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	_, err = service.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileService_Bookmarks(t *testing.T) {
	accounts := newMemoryAccounts()
	maya := seedAccount(t, accounts, "maya@x.com")
	service := NewProfileService(accounts)
	ctx := context.Background()

	_, err := service.AddBookmark(ctx, maya.ID, "hampi")
	require.NoError(t, err)
	bookmarks, err := service.AddBookmark(ctx, maya.ID, "hampi")
	require.NoError(t, err)
	assert.Equal(t, []string{"hampi"}, bookmarks)

	_, err = service.AddBookmark(ctx, maya.ID, "konark")
	require.NoError(t, err)
	bookmarks, err = service.RemoveBookmark(ctx, maya.ID, "hampi")
	require.NoError(t, err)
	assert.Equal(t, []string{"konark"}, bookmarks)

	listed, err := service.ListBookmarks(ctx, maya.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"konark"}, listed)

	_, err = service.AddBookmark(ctx, uuid.New(), "hampi")
	assert.ErrorIs(t, err, ErrNotFound)
}
