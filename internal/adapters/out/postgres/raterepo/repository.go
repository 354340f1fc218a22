package raterepo

import (
	"context"
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/rate"
	"forwarding/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRateRepository implements ports.RateRepository using GORM.
type GormRateRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormRateRepository(db *gorm.DB, tracker aggregateTracker) *GormRateRepository {
	return &GormRateRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a rate and its slabs. The partial unique index on active
// (zone, courier, service type) turns a racing duplicate into a conflict.
func (r *GormRateRepository) Add(ctx context.Context, aggregate *rate.Rate) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("rate", "active rate already exists for courier and service type", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the active flag; the price list itself is immutable.
func (r *GormRateRepository) Update(ctx context.Context, aggregate *rate.Rate) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&RateDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("active", aggregate.IsActive())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("rate", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a rate with its slabs.
func (r *GormRateRepository) Get(ctx context.Context, id kernel.UUID) (*rate.Rate, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RateDTO
	if err := r.withSlabs(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rate", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListActiveByZone returns the zone's active rates.
func (r *GormRateRepository) ListActiveByZone(ctx context.Context, zoneID kernel.UUID) ([]*rate.Rate, error) {
	if err := zoneID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RateDTO
	if err := r.withSlabs(ctx).
		Where("zone_id = ? AND active", zoneID.Bytes()).
		Order("courier, service_type").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	rates := make([]*rate.Rate, 0, len(dtos))
	for _, dto := range dtos {
		rt, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		rates = append(rates, rt)
	}

	return rates, nil
}

func (r *GormRateRepository) withSlabs(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Slabs", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}
