package freeslot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HRC-CalendarService/internal/domain"
)

func TestAddAndHas(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	require.NoError(t, repo.Add(ctx, 1, 600))
	assert.True(t, repo.Has(ctx, 1, 600))
	assert.False(t, repo.Has(ctx, 2, 600))

	// duplicate add is rejected without mutation
	assert.ErrorIs(t, repo.Add(ctx, 1, 600), ErrSlotExists)
	assert.Len(t, repo.ListAll(ctx), 1)
}

func TestRemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	require.NoError(t, repo.Add(ctx, 1, 600))
	require.NoError(t, repo.Add(ctx, 1, 630))
	require.NoError(t, repo.Add(ctx, 2, 600))

	repo.Remove(ctx, 1, 600)
	repo.Remove(ctx, 1, 600) // no-op

	all := repo.ListAll(ctx)
	assert.Equal(t, []domain.FreeSlot{
		{DayIndex: 1, StartMinute: 630},
		{DayIndex: 2, StartMinute: 600},
	}, all)
}

func TestListAllStaysSorted(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	require.NoError(t, repo.Add(ctx, 3, 900))
	require.NoError(t, repo.Add(ctx, 1, 630))
	require.NoError(t, repo.Add(ctx, 3, 540))
	require.NoError(t, repo.Add(ctx, 1, 600))

	assert.Equal(t, []domain.FreeSlot{
		{DayIndex: 1, StartMinute: 600},
		{DayIndex: 1, StartMinute: 630},
		{DayIndex: 3, StartMinute: 540},
		{DayIndex: 3, StartMinute: 900},
	}, repo.ListAll(ctx))
}

func TestHasContiguousRun(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	require.NoError(t, repo.Add(ctx, 1, 600))
	require.NoError(t, repo.Add(ctx, 1, 630))
	require.NoError(t, repo.Add(ctx, 1, 690)) // gap at 660

	assert.True(t, repo.HasContiguousRun(ctx, 1, 600, 2))
	assert.False(t, repo.HasContiguousRun(ctx, 1, 600, 3))
	assert.False(t, repo.HasContiguousRun(ctx, 2, 600, 1))
}

func TestConsumeRunAllOrNothing(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	require.NoError(t, repo.Add(ctx, 1, 600))
	require.NoError(t, repo.Add(ctx, 1, 630))
	require.NoError(t, repo.Add(ctx, 2, 600))

	// missing unit at 660 -> nothing removed
	assert.ErrorIs(t, repo.ConsumeRun(ctx, 1, 600, 3), ErrRunNotAvailable)
	assert.Len(t, repo.ListAll(ctx), 3)

	// exact run -> both units removed, other day untouched
	require.NoError(t, repo.ConsumeRun(ctx, 1, 600, 2))
	assert.Equal(t, []domain.FreeSlot{{DayIndex: 2, StartMinute: 600}}, repo.ListAll(ctx))
}

func TestRestoreRunSkipsExisting(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	require.NoError(t, repo.Add(ctx, 1, 630))

	restored := repo.RestoreRun(ctx, 1, 600, 4)
	assert.Equal(t, 3, restored)

	assert.Equal(t, []domain.FreeSlot{
		{DayIndex: 1, StartMinute: 600},
		{DayIndex: 1, StartMinute: 630},
		{DayIndex: 1, StartMinute: 660},
		{DayIndex: 1, StartMinute: 690},
	}, repo.ListAll(ctx))
}

func TestInsertMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	require.NoError(t, repo.Add(ctx, 1, 600))

	inserted := repo.InsertMissing(ctx, []domain.FreeSlot{
		{DayIndex: 1, StartMinute: 600},
		{DayIndex: 1, StartMinute: 630},
		{DayIndex: 0, StartMinute: 540},
	})
	assert.Equal(t, 2, inserted)
	assert.Equal(t, []domain.FreeSlot{
		{DayIndex: 0, StartMinute: 540},
		{DayIndex: 1, StartMinute: 600},
		{DayIndex: 1, StartMinute: 630},
	}, repo.ListAll(ctx))
}
