package ride_intake_requested

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"dispatch/internal/service/intake"
	rideservice "dispatch/internal/service/ride"
	"dispatch/pkg/logger"
)

type Handler struct {
	intakeService            Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, intakeService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		intakeService:            intakeService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("ride.intake.requested: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("ride.intake.requested: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event requestedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("ride.intake.requested handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("request", event.RequestID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("ride.intake.requested processing")

	ride, err := h.intakeService.CreateFromText(ctx, event.Text)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("ride.intake.requested handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, intake.ErrEmptyText):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("ride.intake.requested handler empty text in event")

		case errors.Is(err, intake.ErrIntakeUnavailable):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("ride.intake.requested handler intake unavailable, message skipped")

		case errors.Is(err, rideservice.ErrMissingRequiredFields),
			errors.Is(err, rideservice.ErrInvalidCustomerName),
			errors.Is(err, rideservice.ErrInvalidLocation),
			errors.Is(err, rideservice.ErrInvalidPriority):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("ride.intake.requested handler draft failed ride validation")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("ride.intake.requested handler failed to create ride")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("request", event.RequestID),
		logger.NewField("ride", ride.ID),
		logger.NewField("priority", ride.Priority.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("ride.intake.requested: processed")

	sess.MarkMessage(message, "")
	return false
}
