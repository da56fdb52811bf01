package datetime

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/datetime/pkg/errors"
	"github.com/yanqian/datetime/pkg/util"
)

func TestServiceCurrentFixedClock(t *testing.T) {
	svc := newServiceUnderTest(func() time.Time {
		return mustParse("2023-03-05T14:07:09Z")
	})

	resp, err := svc.Current(context.Background())
	require.NoError(t, err)
	require.Equal(t, Response{
		DateTime: "05-03-2023 14:07:09",
		Timezone: "UTC",
		Layout:   "DD-MM-YYYY HH:MM:SS",
	}, resp)
}

func TestServiceCurrentNormalizesToUTC(t *testing.T) {
	svc := newServiceUnderTest(func() time.Time {
		return mustParse("2024-07-01T09:00:00+08:00")
	})

	resp, err := svc.Current(context.Background())
	require.NoError(t, err)
	require.Equal(t, "01-07-2024 01:00:00", resp.DateTime)
}

func TestServiceCurrentAdvancingClock(t *testing.T) {
	current := mustParse("2023-03-05T14:07:09Z")
	svc := newServiceUnderTest(func() time.Time { return current })

	first, err := svc.Current(context.Background())
	require.NoError(t, err)

	current = current.Add(time.Second)
	second, err := svc.Current(context.Background())
	require.NoError(t, err)

	require.NotEqual(t, first.DateTime, second.DateTime)
	firstAt, err := time.Parse(util.DateTimeLayout, first.DateTime)
	require.NoError(t, err)
	secondAt, err := time.Parse(util.DateTimeLayout, second.DateTime)
	require.NoError(t, err)
	require.True(t, secondAt.After(firstAt))
}

func TestServiceCurrentClockUnavailable(t *testing.T) {
	svc := newServiceUnderTest(func() time.Time { return time.Time{} })

	resp, err := svc.Current(context.Background())
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeClockUnavailable))
	require.Empty(t, resp.DateTime)
}

func TestServiceCurrentCanceledContext(t *testing.T) {
	calls := 0
	svc := newServiceUnderTest(func() time.Time {
		calls++
		return time.Now()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Current(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, calls)
}

func TestServiceCurrentConcurrent(t *testing.T) {
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))

	const workers = 100
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			resp, err := svc.Current(context.Background())
			if err == nil {
				_, err = time.Parse(util.DateTimeLayout, resp.DateTime)
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}

func newServiceUnderTest(now func() time.Time) *service {
	return &service{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    now,
	}
}

func mustParse(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}
