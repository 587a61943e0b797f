package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/shift-scheduler/internal/events"
)

// NotificationService logs scheduling lifecycle events. It is the hook
// point for future email/webhook delivery.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventShiftCreated, n.handleShiftCreated)
	n.dispatcher.Subscribe(events.EventTimeOffRequested, n.handleTimeOffRequested)
	n.dispatcher.Subscribe(events.EventTimeOffDecided, n.handleTimeOffDecided)
}

func (n *NotificationService) handleShiftCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("ShiftCreated", zap.String("org_id", event.OrgID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleTimeOffRequested(ctx context.Context, event events.Event) error {
	n.logger.Info("TimeOffRequested", zap.String("org_id", event.OrgID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleTimeOffDecided(ctx context.Context, event events.Event) error {
	n.logger.Info("TimeOffDecided", zap.String("org_id", event.OrgID), zap.Any("payload", event.Payload))
	return nil
}
