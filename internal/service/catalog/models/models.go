package models

import (
	"time"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
)

// Request модели

// SubOfferingInput данные услуги в запросах создания и обновления категории.
// ID пустой - новая услуга, заполненный - замена существующей.
type SubOfferingInput struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name" validate:"required,max=200"`
	Price       float64 `json:"price" validate:"gte=0"`
	Duration    string  `json:"duration" validate:"max=100"`
	Description string  `json:"description" validate:"max=1000"`
}

// CreateOfferingRequest запрос на создание категории
type CreateOfferingRequest struct {
	Name         string             `json:"name" validate:"required,max=200"`
	Icon         string             `json:"icon" validate:"max=100"`
	SubOfferings []SubOfferingInput `json:"subOfferings" validate:"dive"`
}

// UpdateOfferingRequest запрос на обновление категории.
// Имя, иконка и список услуг заменяются целиком.
type UpdateOfferingRequest struct {
	Name         string             `json:"name" validate:"required,max=200"`
	Icon         string             `json:"icon" validate:"max=100"`
	SubOfferings []SubOfferingInput `json:"subOfferings" validate:"dive"`
}

// UpdateSubOfferingRequest частичное обновление услуги - меняются только переданные поля
type UpdateSubOfferingRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitnil,max=200"`
	Price       *float64 `json:"price,omitempty" validate:"omitnil,gte=0"`
	Duration    *string  `json:"duration,omitempty" validate:"omitnil,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitnil,max=1000"`
}

// Response модели

// SubOfferingResponse ответ с данными услуги
type SubOfferingResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	Description string  `json:"description"`
}

// OfferingResponse ответ с данными категории
type OfferingResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Icon         string                `json:"icon"`
	SubOfferings []SubOfferingResponse `json:"subOfferings"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// OfferingListResponse ответ со списком категорий
type OfferingListResponse struct {
	Offerings []OfferingResponse `json:"offerings"`
}

// Selection выбранные клиентом услуги с итоговой стоимостью
type Selection struct {
	Items []domain.SubOffering
	Total float64
}

// Names возвращает названия услуг в порядке выбора
func (s *Selection) Names() []string {
	names := make([]string, len(s.Items))
	for i, item := range s.Items {
		names[i] = item.Name
	}
	return names
}

// IDs возвращает ID услуг в порядке выбора
func (s *Selection) IDs() []string {
	ids := make([]string, len(s.Items))
	for i, item := range s.Items {
		ids[i] = item.ID
	}
	return ids
}

// Методы конвертации

// FromDomainSubOffering конвертирует domain модель в DTO
func FromDomainSubOffering(s domain.SubOffering) SubOfferingResponse {
	return SubOfferingResponse{
		ID:          s.ID,
		Name:        s.Name,
		Price:       s.Price,
		Duration:    s.Duration,
		Description: s.Description,
	}
}

// FromDomainOffering конвертирует domain модель в DTO
func FromDomainOffering(o *domain.Offering) *OfferingResponse {
	if o == nil {
		return nil
	}

	subs := make([]SubOfferingResponse, len(o.SubOfferings))
	for i, s := range o.SubOfferings {
		subs[i] = FromDomainSubOffering(s)
	}

	return &OfferingResponse{
		ID:           o.ID,
		Name:         o.Name,
		Icon:         o.Icon,
		SubOfferings: subs,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

// FromDomainOfferingList конвертирует список domain моделей в DTO
func FromDomainOfferingList(offerings []*domain.Offering) *OfferingListResponse {
	resp := &OfferingListResponse{
		Offerings: make([]OfferingResponse, 0, len(offerings)),
	}

	for _, o := range offerings {
		if r := FromDomainOffering(o); r != nil {
			resp.Offerings = append(resp.Offerings, *r)
		}
	}

	return resp
}

// ApplyTo применяет частичное обновление к услуге
func (r *UpdateSubOfferingRequest) ApplyTo(s *domain.SubOffering) {
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.Price != nil {
		s.Price = *r.Price
	}
	if r.Duration != nil {
		s.Duration = *r.Duration
	}
	if r.Description != nil {
		s.Description = *r.Description
	}
}
