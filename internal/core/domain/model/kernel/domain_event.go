package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate and published after the
// aggregate's transaction commits.
type DomainEvent interface {
	EventID() string
	EventType() string
	AggregateID() string
	OccurredOn() time.Time
}
