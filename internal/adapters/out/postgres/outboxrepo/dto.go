// Package outboxrepo stores domain events in the "outbox_messages" table until
// the relay job publishes them.
package outboxrepo

import (
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/outbox"

	"github.com/google/uuid"
)

// MessageDTO is one "outbox_messages" row.
type MessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EventID     string     `gorm:"type:varchar(64);not null"`
	AggregateID string     `gorm:"type:varchar(64);not null;index"`
	EventType   string     `gorm:"type:varchar(128);not null"`
	Payload     string     `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time  `gorm:"not null;index"`
	PublishedAt *time.Time `gorm:"index"`
	RetryCount  int        `gorm:"not null"`
	LastError   string     `gorm:"type:text;not null"`
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}

func fromDomain(m *outbox.Message) MessageDTO {
	return MessageDTO{
		ID:          m.ID().Bytes(),
		EventID:     m.EventID(),
		AggregateID: m.AggregateID(),
		EventType:   m.EventType(),
		Payload:     string(m.Payload()),
		CreatedAt:   m.CreatedAt(),
		PublishedAt: m.PublishedAt(),
		RetryCount:  m.RetryCount(),
		LastError:   m.LastError(),
	}
}

func toDomain(dto MessageDTO) (*outbox.Message, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	return outbox.RestoreMessage(id, dto.EventID, dto.AggregateID, dto.EventType, []byte(dto.Payload),
		dto.CreatedAt, dto.PublishedAt, dto.RetryCount, dto.LastError)
}
