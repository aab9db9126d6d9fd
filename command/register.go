package command

import (
	gcmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-qpic/qpic"
	"github.com/goliatone/go-qpic/query"
)

// Register wires the export commands and queries to go-command.
func Register(reg *gcmd.Registry, exporter *qpic.Exporter) ([]dispatcher.Subscription, error) {
	if exporter == nil {
		return nil, errors.New("exporter is required", errors.CategoryValidation).
			WithTextCode("EXPORTER_REQUIRED")
	}

	export := NewExportCircuitHandler(exporter)
	document := NewBuildDocumentHandler(exporter)
	status := query.NewRenderStatusHandler(exporter.Tracker)
	history := query.NewRenderHistoryHandler(exporter.Tracker)

	subscriptions := []dispatcher.Subscription{
		dispatcher.SubscribeCommand(export),
		dispatcher.SubscribeCommand(document),
		dispatcher.SubscribeQuery(status),
		dispatcher.SubscribeQuery(history),
	}

	if reg != nil {
		handlers := []any{
			export,
			document,
			status,
			history,
		}
		for _, handler := range handlers {
			if err := reg.RegisterCommand(handler); err != nil {
				return subscriptions, err
			}
		}
	}

	return subscriptions, nil
}
