package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachconnect/backend/internal/models"
)

func strPtr(s string) *string { return &s }

func TestFileProfileStoreFindMissing(t *testing.T) {
	s, err := NewFileProfileStore(t.TempDir(), "profiles.json")
	require.NoError(t, err)

	_, err = s.FindByUserID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestFileProfileStoreUpsertCreatesAndMerges(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileProfileStore(t.TempDir(), "profiles.json")
	require.NoError(t, err)

	prof, err := s.Upsert(ctx, "u1", &ProfilePatch{
		FullName: strPtr("A"),
		Bio:      strPtr("x"),
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", prof.UserID)
	assert.Equal(t, "A", prof.FullName)
	assert.False(t, prof.CreatedAt.IsZero())

	// Fields absent from the patch survive the second upsert.
	prof, err = s.Upsert(ctx, "u1", &ProfilePatch{Bio: strPtr("y")})
	require.NoError(t, err)
	assert.Equal(t, "A", prof.FullName)
	assert.Equal(t, "y", prof.Bio)
}

func TestFileProfileStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := NewFileProfileStore(dir, "profiles.json")
	require.NoError(t, err)
	_, err = s.Upsert(ctx, "u1", &ProfilePatch{
		FullName: strPtr("Jane Doe"),
		Goals:    []string{"leadership"},
	})
	require.NoError(t, err)
	require.NoError(t, s.Close(ctx))

	reopened, err := NewFileProfileStore(dir, "profiles.json")
	require.NoError(t, err)
	prof, err := reopened.FindByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", prof.FullName)
	assert.Equal(t, []string{"leadership"}, prof.Goals)
}

func TestProfilePatchApplyLeavesNilFieldsUntouched(t *testing.T) {
	prof := &models.Profile{
		UserID:   "u1",
		FullName: "A",
		Goals:    []string{"leadership"},
	}

	(&ProfilePatch{Bio: strPtr("hi")}).Apply(prof)

	assert.Equal(t, "A", prof.FullName)
	assert.Equal(t, []string{"leadership"}, prof.Goals)
	assert.Equal(t, "hi", prof.Bio)
}
