// Package worker wires background consumers of the event dispatcher.
// The dispatcher is synchronous, so "worker" here means subscription
// setup rather than a goroutine pool.
package worker

import (
	"github.com/spec-kit/console-service/internal/service"
)

// StartNotificationWorker subscribes the notification handlers to the
// console's domain events: entitlement toggles, point adjustments,
// subscription changes, ticket lifecycle and record purchases.
func StartNotificationWorker(notifications *service.NotificationService) {
	if notifications == nil {
		return
	}
	notifications.RegisterHandlers()
}
