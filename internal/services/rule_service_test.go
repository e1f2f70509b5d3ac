package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titleguard/internal/models"
	"titleguard/internal/store"
	"titleguard/internal/store/primary"
)

func newTestPrimaryStore(t *testing.T) *primary.StoreImpl {
	t.Helper()
	s, err := primary.NewPrimaryStore(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRuleService(t *testing.T) {
	ctx := context.Background()
	svc := NewRuleService(newTestPrimaryStore(t))

	_, err := svc.AddRule(ctx, "   ")
	assert.ErrorIs(t, err, models.ErrValidation)

	rule, err := svc.AddRule(ctx, "  reaction ")
	require.NoError(t, err)
	assert.Equal(t, "reaction", rule.Phrase)

	_, err = svc.AddRule(ctx, "Reaction")
	assert.ErrorIs(t, err, store.ErrDuplicate)

	added, err := svc.ImportRules(ctx, "prank\nREACTION\n\n gone wrong \n")
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	phrases, err := svc.Phrases(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"reaction", "prank", "gone wrong"}, phrases)

	require.NoError(t, svc.RemoveRule(ctx, rule.ID))
	assert.ErrorIs(t, svc.RemoveRule(ctx, rule.ID), store.ErrNotFound)
}

func TestBlocklistService(t *testing.T) {
	ctx := context.Background()
	svc := NewBlocklistService(newTestPrimaryStore(t))

	_, err := svc.Block(ctx, "not-an-id", "")
	assert.ErrorIs(t, err, models.ErrInvalidVideoID)

	v, err := svc.Block(ctx, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "")
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", v.VideoID)
	assert.Equal(t, models.UnknownTitle, v.Title)

	_, err = svc.Block(ctx, "dQw4w9WgXcQ", "again")
	assert.ErrorIs(t, err, store.ErrDuplicate)

	added, err := svc.Import(ctx, "dQw4w9WgXcQ: dup\nAbCdEfGhIjK: Part 1: Start\nbad: x\n")
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	blocked, err := svc.IsBlocked(ctx, "AbCdEfGhIjK")
	require.NoError(t, err)
	assert.True(t, blocked)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, svc.Unblock(ctx, "/shorts/AbCdEfGhIjK"))
	assert.ErrorIs(t, svc.Unblock(ctx, "AbCdEfGhIjK"), store.ErrNotFound)
	assert.ErrorIs(t, svc.Unblock(ctx, "nope"), models.ErrInvalidVideoID)
}
