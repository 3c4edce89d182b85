package implementation

import (
	"context"
	"errors"

	"peche-payments-be/internal/entity"
	"peche-payments-be/internal/mapper"
	"peche-payments-be/internal/model"
	"peche-payments-be/internal/repository/contract"
	"peche-payments-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SubscriberRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubscriberMapper
}

func NewSubscriberRepository(db *gorm.DB) contract.SubscriberRepository {
	return &SubscriberRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubscriberMapper(),
	}
}

func (r *SubscriberRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubscriberRepositoryImpl) Create(ctx context.Context, subscriber *entity.Subscriber) error {
	m := r.mapper.ToModel(subscriber)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*subscriber = *r.mapper.ToEntity(m)
	return nil
}

func (r *SubscriberRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscriber, error) {
	var m model.Subscriber
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SubscriberRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscriber, error) {
	var models []*model.Subscriber
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Subscriber, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
