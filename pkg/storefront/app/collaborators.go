package app

import (
	log "github.com/sirupsen/logrus"

	"github.com/ralphmarondev/varicacao/pkg/storefront/domain/model"
	"github.com/ralphmarondev/varicacao/pkg/storefront/domain/service"
)

// LogDispatcher writes domain events to the structured log. The prototype
// has no message broker, so the log is the event sink.
type LogDispatcher struct{}

func (LogDispatcher) Dispatch(event service.Event) error {
	log.WithFields(log.Fields{
		"event":   event.Type(),
		"payload": event,
	}).Info("domain event")
	return nil
}

// LogProcessor stands in for the external order-processing collaborator.
// It acknowledges the summary and logs it; payment execution and order
// history are outside this core.
type LogProcessor struct{}

func (LogProcessor) Process(summary model.OrderSummary) error {
	log.WithFields(log.Fields{
		"orderId":   summary.ID,
		"items":     len(summary.Lines),
		"total":     summary.Totals.Total.StringFixed(2),
		"method":    summary.Payment.Method,
		"createdAt": summary.CreatedAt,
	}).Info("order confirmed")
	return nil
}
