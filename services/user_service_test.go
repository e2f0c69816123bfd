package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateUserDeduplicatesEmail(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	created, err := svc.Create(ctx, map[string]any{"email": "u@x.com", "role": "user"})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.Create(ctx, map[string]any{"email": "u@x.com", "role": "admin"})
	require.NoError(t, err)
	assert.False(t, created)

	// email keys are case-sensitive; a different casing is a different user
	created, err = svc.Create(ctx, map[string]any{"email": "U@x.com"})
	require.NoError(t, err)
	assert.True(t, created)

	_, err = svc.Create(ctx, map[string]any{"role": "user"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUserLookups(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		created, err := svc.Create(ctx, map[string]any{"email": email})
		require.NoError(t, err)
		require.True(t, created)
	}

	user, err := svc.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	_, err = svc.GetByEmail(ctx, "z@x.com")
	assert.ErrorIs(t, err, ErrNotFound)

	others, err := svc.ListOthers(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Len(t, others, 2)

	found, err := svc.Search(ctx, "b@x.com")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "b@x.com", found[0].Email)
}

func TestSetRole(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	created, err := svc.Create(ctx, map[string]any{"email": "u@x.com", "role": "user"})
	require.NoError(t, err)
	require.True(t, created)

	user, err := svc.GetByEmail(ctx, "u@x.com")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.SetRole(ctx, user.ID.Hex(), "chef"), ErrValidation)
	assert.ErrorIs(t, svc.SetRole(ctx, "junk", "admin"), ErrInvalidID)
	assert.ErrorIs(t, svc.SetRole(ctx, primitive.NewObjectID().Hex(), "admin"), ErrNotFound)

	require.NoError(t, svc.SetRole(ctx, user.ID.Hex(), "admin"))
	user, err = svc.GetByEmail(ctx, "u@x.com")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Role)
}
