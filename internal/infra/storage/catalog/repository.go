package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
)

// Repository хранилище каталога в памяти.
// Порядок добавления категорий сохраняется, наружу отдаются только копии.
type Repository struct {
	mu        sync.RWMutex
	offerings []*domain.Offering
}

// NewRepository создает пустой каталог
func NewRepository() *Repository {
	return &Repository{offerings: make([]*domain.Offering, 0)}
}

// List возвращает все категории в порядке добавления
func (r *Repository) List(ctx context.Context) ([]*domain.Offering, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Offering, 0, len(r.offerings))
	for _, o := range r.offerings {
		result = append(result, o.Clone())
	}
	return result, nil
}

// GetByID получает категорию по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Offering, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: id=%s", ErrOfferingNotFound, id)
	}
	return r.offerings[idx].Clone(), nil
}

// Create добавляет категорию в конец каталога
func (r *Repository) Create(ctx context.Context, offering *domain.Offering) (*domain.Offering, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(offering.ID) >= 0 {
		return nil, fmt.Errorf("%w: id=%s", ErrDuplicateID, offering.ID)
	}

	r.offerings = append(r.offerings, offering.Clone())
	return offering.Clone(), nil
}

// Update полностью заменяет категорию, сохраняя её позицию
func (r *Repository) Update(ctx context.Context, offering *domain.Offering) (*domain.Offering, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(offering.ID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: id=%s", ErrOfferingNotFound, offering.ID)
	}

	r.offerings[idx] = offering.Clone()
	return offering.Clone(), nil
}

// Delete удаляет категорию. Возвращает false, если категории не было
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return false, nil
	}

	r.offerings = append(r.offerings[:idx], r.offerings[idx+1:]...)
	return true, nil
}

// FindSubOfferings ищет услуги по ID во всём каталоге.
// Результат идёт в порядке ids; первый отсутствующий ID возвращается как ErrSubOfferingNotFound.
func (r *Repository) FindSubOfferings(ctx context.Context, ids []string) ([]domain.SubOffering, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.SubOffering, 0, len(ids))
	for _, id := range ids {
		sub, ok := r.findSub(id)
		if !ok {
			return nil, fmt.Errorf("%w: id=%s", ErrSubOfferingNotFound, id)
		}
		result = append(result, sub)
	}
	return result, nil
}

func (r *Repository) findSub(id string) (domain.SubOffering, bool) {
	for _, o := range r.offerings {
		if sub, ok := o.FindSubOffering(id); ok {
			return *sub, true
		}
	}
	return domain.SubOffering{}, false
}

func (r *Repository) indexOf(id string) int {
	for i, o := range r.offerings {
		if o.ID == id {
			return i
		}
	}
	return -1
}
