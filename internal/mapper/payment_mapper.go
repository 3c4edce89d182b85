package mapper

import (
	"peche-payments-be/internal/entity"
	"peche-payments-be/internal/model"
)

type PaymentMapper struct{}

func NewPaymentMapper() *PaymentMapper {
	return &PaymentMapper{}
}

func (m *PaymentMapper) ToEntity(p *model.Payment) *entity.Payment {
	if p == nil {
		return nil
	}
	return &entity.Payment{
		Id:            p.Id,
		PaymentId:     p.PaymentId,
		OrderId:       p.OrderId,
		Name:          p.Name,
		Email:         p.Email,
		Phone:         p.Phone,
		ProductName:   p.ProductName,
		Amount:        p.Amount,
		Currency:      p.Currency,
		PaymentMethod: p.PaymentMethod,
		Status:        entity.PaymentStatus(p.Status),
		PaymentDate:   p.PaymentDate,
		Signature:     p.Signature,
		CreatedAt:     p.CreatedAt,
	}
}

func (m *PaymentMapper) ToModel(p *entity.Payment) *model.Payment {
	if p == nil {
		return nil
	}
	return &model.Payment{
		Id:            p.Id,
		PaymentId:     p.PaymentId,
		OrderId:       p.OrderId,
		Name:          p.Name,
		Email:         p.Email,
		Phone:         p.Phone,
		ProductName:   p.ProductName,
		Amount:        p.Amount,
		Currency:      p.Currency,
		PaymentMethod: p.PaymentMethod,
		Status:        string(p.Status),
		PaymentDate:   p.PaymentDate,
		Signature:     p.Signature,
		CreatedAt:     p.CreatedAt,
	}
}
