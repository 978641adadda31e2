package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-ServiceBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-ServiceBooking/internal/service/catalog/models"
)

// Service сервис редактирования каталога.
// Предполагается один администратор: конкурентные правки каталога не согласуются между собой.
type Service struct {
	catalogRepo  CatalogRepository
	timeProvider TimeProvider
	validate     *validator.Validate
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	catalogRepo CatalogRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		catalogRepo:  catalogRepo,
		timeProvider: timeProvider,
		validate:     validator.New(),
		logger:       logger,
	}
}

// List возвращает все категории в порядке добавления
func (s *Service) List(ctx context.Context) (*models.OfferingListResponse, error) {
	offerings, err := s.catalogRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOfferingList(offerings), nil
}

// GetByID получает категорию по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.OfferingResponse, error) {
	offering, err := s.getOffering(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainOffering(offering), nil
}

// Create создает категорию. ID генерируются для категории и каждой услуги
func (s *Service) Create(ctx context.Context, req *models.CreateOfferingRequest) (*models.OfferingResponse, error) {
	s.logger.Info("Create: creating offering name=%q with %d sub-offerings", req.Name, len(req.SubOfferings))

	// 1. Валидируем входные данные
	if err := s.validateOffering(req, req.Name, req.SubOfferings); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем доменную модель, ID услуг из запроса не используются
	now := s.timeProvider.Now()
	offering := &domain.Offering{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Icon:         req.Icon,
		SubOfferings: make([]domain.SubOffering, 0, len(req.SubOfferings)),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, in := range req.SubOfferings {
		offering.SubOfferings = append(offering.SubOfferings, toDomainSub(uuid.NewString(), in))
	}

	// 3. Сохраняем
	created, err := s.catalogRepo.Create(ctx, offering)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created offering id=%s", created.ID)
	return models.FromDomainOffering(created), nil
}

// Update заменяет имя, иконку и список услуг категории.
// Услуги без ID считаются новыми, услуги с ID заменяют существующие с тем же ID.
// Услуги, не перечисленные в запросе, удаляются.
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateOfferingRequest) (*models.OfferingResponse, error) {
	s.logger.Info("Update: updating offering id=%s", id)

	// 1. Валидируем входные данные
	if err := s.validateOffering(req, req.Name, req.SubOfferings); err != nil {
		s.logger.Warn("Update: validation failed for offering id=%s: %v", id, err)
		return nil, err
	}

	// 2. Получаем существующую категорию
	offering, err := s.getOffering(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	// 3. Сопоставляем услуги по ID
	subs := make([]domain.SubOffering, 0, len(req.SubOfferings))
	for _, in := range req.SubOfferings {
		if in.ID == "" {
			subs = append(subs, toDomainSub(uuid.NewString(), in))
			continue
		}
		if _, ok := offering.FindSubOffering(in.ID); !ok {
			s.logger.Warn("Update: sub-offering id=%s not found in offering id=%s", in.ID, id)
			return nil, fmt.Errorf("%w: id=%s", ErrSubOfferingNotFound, in.ID)
		}
		subs = append(subs, toDomainSub(in.ID, in))
	}

	offering.Name = strings.TrimSpace(req.Name)
	offering.Icon = req.Icon
	offering.SubOfferings = subs
	offering.UpdatedAt = s.timeProvider.Now()

	// 4. Сохраняем
	updated, err := s.catalogRepo.Update(ctx, offering)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrOfferingNotFound) {
			s.logger.Warn("Update: offering id=%s disappeared before save", id)
			return nil, fmt.Errorf("%w: id=%s", ErrOfferingNotFound, id)
		}
		s.logger.Error("Update: repository error for offering id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated offering id=%s", id)
	return models.FromDomainOffering(updated), nil
}

// Delete удаляет категорию. Отсутствие категории ошибкой не считается
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.catalogRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Delete: repository error for offering id=%s: %v", id, err)
		return false, fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !deleted {
		s.logger.Info("Delete: offering id=%s not found, nothing to delete", id)
		return false, nil
	}

	s.logger.Info("Delete: successfully deleted offering id=%s", id)
	return true, nil
}

// AddSubOffering добавляет услугу в конец категории
func (s *Service) AddSubOffering(ctx context.Context, offeringID string, req *models.SubOfferingInput) (*models.SubOfferingResponse, error) {
	s.logger.Info("AddSubOffering: adding sub-offering name=%q to offering id=%s", req.Name, offeringID)

	if err := s.validateSub(*req); err != nil {
		s.logger.Warn("AddSubOffering: validation failed: %v", err)
		return nil, err
	}

	offering, err := s.getOffering(ctx, "AddSubOffering", offeringID)
	if err != nil {
		return nil, err
	}

	sub := toDomainSub(uuid.NewString(), *req)
	offering.SubOfferings = append(offering.SubOfferings, sub)
	offering.UpdatedAt = s.timeProvider.Now()

	if err := s.save(ctx, "AddSubOffering", offering); err != nil {
		return nil, err
	}

	s.logger.Info("AddSubOffering: successfully added sub-offering id=%s", sub.ID)
	resp := models.FromDomainSubOffering(sub)
	return &resp, nil
}

// UpdateSubOffering частично обновляет услугу
func (s *Service) UpdateSubOffering(ctx context.Context, offeringID, subID string, req *models.UpdateSubOfferingRequest) (*models.SubOfferingResponse, error) {
	s.logger.Info("UpdateSubOffering: updating sub-offering id=%s in offering id=%s", subID, offeringID)

	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("UpdateSubOffering: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, fmt.Errorf("%w: sub-offering name is required", ErrInvalidInput)
	}

	offering, err := s.getOffering(ctx, "UpdateSubOffering", offeringID)
	if err != nil {
		return nil, err
	}

	sub, ok := offering.FindSubOffering(subID)
	if !ok {
		s.logger.Warn("UpdateSubOffering: sub-offering id=%s not found in offering id=%s", subID, offeringID)
		return nil, fmt.Errorf("%w: id=%s", ErrSubOfferingNotFound, subID)
	}
	req.ApplyTo(sub)
	sub.Name = strings.TrimSpace(sub.Name)
	offering.UpdatedAt = s.timeProvider.Now()

	if err := s.save(ctx, "UpdateSubOffering", offering); err != nil {
		return nil, err
	}

	s.logger.Info("UpdateSubOffering: successfully updated sub-offering id=%s", subID)
	resp := models.FromDomainSubOffering(*sub)
	return &resp, nil
}

// DeleteSubOffering удаляет услугу из категории.
// Возвращает false, если услуги в категории нет; отсутствие самой категории - ошибка.
func (s *Service) DeleteSubOffering(ctx context.Context, offeringID, subID string) (bool, error) {
	offering, err := s.getOffering(ctx, "DeleteSubOffering", offeringID)
	if err != nil {
		return false, err
	}

	kept := make([]domain.SubOffering, 0, len(offering.SubOfferings))
	for _, sub := range offering.SubOfferings {
		if sub.ID != subID {
			kept = append(kept, sub)
		}
	}
	if len(kept) == len(offering.SubOfferings) {
		s.logger.Info("DeleteSubOffering: sub-offering id=%s not found in offering id=%s", subID, offeringID)
		return false, nil
	}

	offering.SubOfferings = kept
	offering.UpdatedAt = s.timeProvider.Now()

	if err := s.save(ctx, "DeleteSubOffering", offering); err != nil {
		return false, err
	}

	s.logger.Info("DeleteSubOffering: successfully deleted sub-offering id=%s", subID)
	return true, nil
}

// ResolveSelection находит выбранные услуги и считает итоговую стоимость.
// Порядок выбора сохраняется; пустой выбор и повторяющиеся ID - ошибка валидации,
// отсутствующая в каталоге услуга - ErrInvalidSelection.
func (s *Service) ResolveSelection(ctx context.Context, ids []string) (*models.Selection, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one service must be selected", ErrInvalidInput)
	}
	if len(ids) > domain.MaxSelectionSize {
		return nil, fmt.Errorf("%w: at most %d services can be selected", ErrInvalidInput, domain.MaxSelectionSize)
	}

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: service %q selected twice", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	items, err := s.catalogRepo.FindSubOfferings(ctx, ids)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrSubOfferingNotFound) {
			s.logger.Warn("ResolveSelection: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
		}
		s.logger.Error("ResolveSelection: repository error: %v", err)
		return nil, fmt.Errorf("%w: ResolveSelection - repository error: %v", ErrInternal, err)
	}

	selection := &models.Selection{Items: items}
	for _, item := range items {
		selection.Total += item.Price
	}

	return selection, nil
}

// Вспомогательные методы

func (s *Service) getOffering(ctx context.Context, op, id string) (*domain.Offering, error) {
	offering, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrOfferingNotFound) {
			s.logger.Warn("%s: offering id=%s not found", op, id)
			return nil, fmt.Errorf("%w: id=%s", ErrOfferingNotFound, id)
		}
		s.logger.Error("%s: repository error for offering id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return offering, nil
}

func (s *Service) save(ctx context.Context, op string, offering *domain.Offering) error {
	if _, err := s.catalogRepo.Update(ctx, offering); err != nil {
		if errors.Is(err, catalogRepo.ErrOfferingNotFound) {
			return fmt.Errorf("%w: id=%s", ErrOfferingNotFound, offering.ID)
		}
		s.logger.Error("%s: repository error for offering id=%s: %v", op, offering.ID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return nil
}

// validateOffering проверяет теги запроса, непустое имя и уникальность ID услуг
func (s *Service) validateOffering(req interface{}, name string, subs []models.SubOfferingInput) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: offering name is required", ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(subs))
	for _, sub := range subs {
		if strings.TrimSpace(sub.Name) == "" {
			return fmt.Errorf("%w: sub-offering name is required", ErrInvalidInput)
		}
		if sub.ID == "" {
			continue
		}
		if _, ok := seen[sub.ID]; ok {
			return fmt.Errorf("%w: duplicate sub-offering id %q", ErrInvalidInput, sub.ID)
		}
		seen[sub.ID] = struct{}{}
	}

	return nil
}

func (s *Service) validateSub(in models.SubOfferingInput) error {
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: sub-offering name is required", ErrInvalidInput)
	}
	return nil
}

func toDomainSub(id string, in models.SubOfferingInput) domain.SubOffering {
	return domain.SubOffering{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		Duration:    in.Duration,
		Description: in.Description,
	}
}
