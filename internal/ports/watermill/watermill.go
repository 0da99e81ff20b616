// Package watermillport subscribes the application event handlers to the
// event store.
package watermillport

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/jackc/pgx/v5/pgxpool"

	mailevent "github.com/kkuglocal/campus-backend/internal/application/mail/event"
	"github.com/kkuglocal/campus-backend/pkg/watermillx"
)

type Port struct {
	eventProcessor *cqrs.EventProcessor
}

func NewPort(router *message.Router, pool *pgxpool.Pool, wlogger watermill.LoggerAdapter) (*Port, error) {
	eventProcessor, err := watermillx.NewEventProcessor(router, pool, wlogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create event processor: %w", err)
	}

	return &Port{eventProcessor: eventProcessor}, nil
}

func NewPortForTest(router *message.Router, pool *pgxpool.Pool, wlogger watermill.LoggerAdapter) (*Port, error) {
	eventProcessor, err := watermillx.NewEventProcessorForTests(router, pool, wlogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create event processor: %w", err)
	}

	return &Port{eventProcessor: eventProcessor}, nil
}

type AppEventHandlers struct {
	Mail *mailevent.MailEventHandler
}

func (p *Port) Run(ctx context.Context, handlers AppEventHandlers) error {
	err := p.eventProcessor.AddHandlers(
		cqrs.NewEventHandler("MailOnUserRegistered", handlers.Mail.HandleUserRegistered),
		cqrs.NewEventHandler("MailOnVerificationCodeResent", handlers.Mail.HandleVerificationCodeResent),
	)
	if err != nil {
		return fmt.Errorf("failed to add event handlers: %w", err)
	}

	return nil
}
