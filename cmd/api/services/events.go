package services

import (
	"context"
	"time"

	"revana/internal/logger"
	"revana/eventbus"
)

// publishEvent emits a telemetry event. Failures are logged and swallowed;
// event publishing never fails the request that triggered it.
func publishEvent(bus eventbus.EventBus, topic, eventType string, payload any) {
	ev, err := eventbus.NewEvent(eventType, payload)
	if err != nil {
		logger.ErrorWithFields("failed to build event", logger.Fields{
			"topic": topic,
			"type":  eventType,
			"error": err.Error(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := bus.Publish(ctx, topic, ev); err != nil {
		logger.WarnWithFields("failed to publish event", logger.Fields{
			"topic": topic,
			"type":  eventType,
			"error": err.Error(),
		})
	}
}
