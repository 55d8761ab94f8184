package ride_start_delay

import (
	"time"

	"dispatch/internal/entities"
)

// StartDelayFactory выбирает задержку автоперехода assigned -> in_progress.
// Срочные поездки стартуют вдвое быстрее базовой задержки.
type StartDelayFactory struct {
	baseDelay time.Duration
}

func New(baseDelay time.Duration) *StartDelayFactory {
	return &StartDelayFactory{
		baseDelay: baseDelay,
	}
}

func (f *StartDelayFactory) StartDelay(priority entities.RidePriorityType) time.Duration {
	switch priority {
	case entities.PriorityUrgent:
		return f.baseDelay / 2
	case entities.PriorityHigh, entities.PriorityNormal:
		return f.baseDelay
	default:
		return f.baseDelay
	}
}
