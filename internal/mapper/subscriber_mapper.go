package mapper

import (
	"peche-payments-be/internal/entity"
	"peche-payments-be/internal/model"
)

type SubscriberMapper struct{}

func NewSubscriberMapper() *SubscriberMapper {
	return &SubscriberMapper{}
}

func (m *SubscriberMapper) ToEntity(s *model.Subscriber) *entity.Subscriber {
	if s == nil {
		return nil
	}
	return &entity.Subscriber{
		Id:        s.Id,
		Email:     s.Email,
		CreatedAt: s.CreatedAt,
	}
}

func (m *SubscriberMapper) ToModel(s *entity.Subscriber) *model.Subscriber {
	if s == nil {
		return nil
	}
	return &model.Subscriber{
		Id:        s.Id,
		Email:     s.Email,
		CreatedAt: s.CreatedAt,
	}
}
