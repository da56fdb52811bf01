package datetime

import (
	"context"
	"log/slog"
	"time"

	apperrors "github.com/yanqian/datetime/pkg/errors"
	"github.com/yanqian/datetime/pkg/util"
)

// Service reports the current UTC wall-clock time.
type Service interface {
	Current(ctx context.Context) (Response, error)
}

type service struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires the datetime domain against the system clock.
func NewService(logger *slog.Logger) Service {
	return &service{
		logger: logger.With("component", "datetime.service"),
		now:    util.NowUTC,
	}
}

func (s *service) Current(ctx context.Context) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}

	instant := s.now()
	if instant.IsZero() {
		return Response{}, apperrors.Wrap(apperrors.CodeClockUnavailable, "system clock returned no reading", nil)
	}

	formatted := util.FormatDateTime(instant)
	s.logger.Debug("clock read", "datetime", formatted)

	return Response{
		DateTime: formatted,
		Timezone: timezoneUTC,
		Layout:   displayLayout,
	}, nil
}
