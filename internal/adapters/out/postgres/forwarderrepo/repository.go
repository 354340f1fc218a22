package forwarderrepo

import (
	"context"
	"errors"

	"forwarding/internal/core/domain/model/forwarder"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormForwarderRepository implements ports.ForwarderRepository using GORM.
type GormForwarderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormForwarderRepository(db *gorm.DB, tracker aggregateTracker) *GormForwarderRepository {
	return &GormForwarderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new forwarder.
func (r *GormForwarderRepository) Add(ctx context.Context, aggregate *forwarder.Forwarder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("forwarder", "forwarder already exists", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves name and consolidation settings, zero values included.
func (r *GormForwarderRepository) Update(ctx context.Context, aggregate *forwarder.Forwarder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ForwarderDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "consolidation_enabled", "consolidation_discount_percent", "consolidation_holding_period_days", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("forwarder", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a forwarder by ID.
func (r *GormForwarderRepository) Get(ctx context.Context, id kernel.UUID) (*forwarder.Forwarder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ForwarderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("forwarder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
