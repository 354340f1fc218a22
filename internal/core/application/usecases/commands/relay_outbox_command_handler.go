package commands

import (
	"context"
	"time"

	"forwarding/internal/core/ports"
)

// PublishRecorder receives one observation per publish attempt.
type PublishRecorder interface {
	RecordOutboxPublish(eventType string, success bool)
}

// RelayResult summarizes one relay run.
type RelayResult struct {
	Published int
	Failed    int
}

// RelayOutboxCommandHandler publishes pending outbox messages in creation
// order. Rows stay locked for the duration of the run, so concurrent relays
// never send the same message twice. A failed publish increments the retry
// count and keeps the message pending; the next run tries it again.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
	recorder   PublishRecorder
}

func NewRelayOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
	recorder PublishRecorder,
) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		recorder:   recorder,
	}
}

func (h *RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (RelayResult, error) {
	if err := cmd.Validate(); err != nil {
		return RelayResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RelayResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OutboxRepository()
	messages, err := repo.ListUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return RelayResult{}, err
	}

	var result RelayResult
	for _, m := range messages {
		if pubErr := h.publisher.Publish(ctx, m); pubErr != nil {
			m.MarkFailed(pubErr)
			result.Failed++
		} else {
			m.MarkPublished(time.Now().UTC())
			result.Published++
		}
		if h.recorder != nil {
			h.recorder.RecordOutboxPublish(m.EventType(), m.IsPublished())
		}

		if err = repo.Update(ctx, m); err != nil {
			return RelayResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return RelayResult{}, err
	}

	return result, nil
}
