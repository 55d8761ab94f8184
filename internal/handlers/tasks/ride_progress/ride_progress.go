package ride_progress

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type Service interface {
	PromoteOverdueAssigned(ctx context.Context) (int64, error)
}

type RideProgress struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewRideProgress(log logger.Logger, service Service, interval time.Duration) *RideProgress {
	return &RideProgress{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (p *RideProgress) TTL() time.Duration {
	return p.interval
}

func (p *RideProgress) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	rowsAffected, err := p.service.PromoteOverdueAssigned(ctxWithTimeout)

	if rowsAffected > 0 {
		p.log.With(
			logger.NewField("promoted_rides", rowsAffected),
		).Info("ride progress")
	}

	return err
}

func (p *RideProgress) Info() string {
	return "ride progress"
}
