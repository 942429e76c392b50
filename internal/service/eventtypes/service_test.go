package eventtypes

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventtypestore "github.com/m04kA/HRC-CalendarService/internal/infra/storage/eventtype"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() *Service {
	return NewService(eventtypestore.NewRepository(), nopLogger{})
}

func TestCreate_TrimsAndStores(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	et, err := svc.Create(ctx, "  Pair Programming ")
	require.NoError(t, err)
	assert.Equal(t, "Pair Programming", et.Name)
	assert.NotEmpty(t, et.ID)
}

func TestCreate_RejectsBlankAndTooLong(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "   ")
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Create(ctx, strings.Repeat("x", 19))
	assert.ErrorIs(t, err, ErrNameTooLong)

	// 18 characters is still fine
	_, err = svc.Create(ctx, strings.Repeat("x", 18))
	assert.NoError(t, err)
}

func TestCreate_RejectsCaseInsensitiveDuplicate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "Screening")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "SCREENING")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = svc.Create(ctx, " screening ")
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestSeed_IsIdempotent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	svc.Seed(ctx)
	svc.Seed(ctx)

	names := make([]string, 0)
	for _, et := range svc.List(ctx) {
		names = append(names, et.Name)
	}
	assert.Equal(t, []string{"HR Manager", "Screening", "Technical"}, names)
}
