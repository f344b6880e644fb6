package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Naxdouglas/contract-renewal-sys/internal/core/events"
)

// EventHandler turns renewal workflow events into in-app notifications for
// the officer whose contract is under review.
type EventHandler struct {
	service *Service
	logger  *slog.Logger
}

func NewEventHandler(service *Service, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		logger:  logger,
	}
}

func (h *EventHandler) HandleRenewalSubmitted(ctx context.Context, event events.Event) error {
	submitted, ok := event.(*events.RenewalSubmittedEvent)
	if !ok {
		h.logger.Error("invalid event type for renewal submitted handler", "event_type", event.EventType())
		return fmt.Errorf("expected RenewalSubmittedEvent, got %T", event)
	}
	if submitted.OfficerUserID == 0 {
		return nil
	}

	_, err := h.service.Notify(submitted.OfficerUserID, TypeRenewalSubmitted,
		"Your contract renewal has been submitted for review.")
	if err != nil {
		return fmt.Errorf("notify officer for request %d: %w", submitted.RequestID, err)
	}
	return nil
}

func (h *EventHandler) HandleRenewalRecommended(ctx context.Context, event events.Event) error {
	recommended, ok := event.(*events.RenewalRecommendedEvent)
	if !ok {
		h.logger.Error("invalid event type for renewal recommended handler", "event_type", event.EventType())
		return fmt.Errorf("expected RenewalRecommendedEvent, got %T", event)
	}
	if recommended.OfficerUserID == 0 {
		return nil
	}

	_, err := h.service.Notify(recommended.OfficerUserID, TypeRenewalRecommended,
		"Your renewal request has been reviewed by your manager.")
	if err != nil {
		return fmt.Errorf("notify officer for request %d: %w", recommended.RequestID, err)
	}
	return nil
}

func (h *EventHandler) HandleRenewalDecided(ctx context.Context, event events.Event) error {
	decided, ok := event.(*events.RenewalDecidedEvent)
	if !ok {
		h.logger.Error("invalid event type for renewal decided handler", "event_type", event.EventType())
		return fmt.Errorf("expected RenewalDecidedEvent, got %T", event)
	}
	if decided.OfficerUserID == 0 {
		return nil
	}

	message := "A decision has been made on your contract renewal: " + decided.Decision + "."
	_, err := h.service.Notify(decided.OfficerUserID, TypeRenewalDecided, message)
	if err != nil {
		return fmt.Errorf("notify officer for request %d: %w", decided.RequestID, err)
	}
	return nil
}

func (h *EventHandler) RegisterEventHandlers(eventBus *events.EventBus) {
	eventBus.Subscribe(events.EventTypeRenewalSubmitted, h.HandleRenewalSubmitted)
	eventBus.Subscribe(events.EventTypeRenewalRecommended, h.HandleRenewalRecommended)
	eventBus.Subscribe(events.EventTypeRenewalDecided, h.HandleRenewalDecided)

	h.logger.Info("notification event handlers registered",
		"handlers", []string{
			events.EventTypeRenewalSubmitted,
			events.EventTypeRenewalRecommended,
			events.EventTypeRenewalDecided,
		})
}
