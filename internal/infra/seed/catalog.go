package seed

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
)

type catalogFile struct {
	Offerings []offeringSeed `yaml:"offerings" validate:"dive"`
}

type offeringSeed struct {
	ID           string            `yaml:"id"`
	Name         string            `yaml:"name" validate:"required,max=200"`
	Icon         string            `yaml:"icon"`
	SubOfferings []subOfferingSeed `yaml:"sub_offerings" validate:"dive"`
}

type subOfferingSeed struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name" validate:"required,max=200"`
	Price       float64 `yaml:"price" validate:"gte=0"`
	Duration    string  `yaml:"duration"`
	Description string  `yaml:"description" validate:"max=1000"`
}

// LoadCatalog читает YAML-файл каталога и преобразует его в доменные модели.
// Пустые ID заполняются UUID.
func LoadCatalog(path string, now time.Time) ([]*domain.Offering, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadFile, path, err)
	}
	return ParseCatalog(data, now)
}

// ParseCatalog разбирает YAML каталога
func ParseCatalog(data []byte, now time.Time) ([]*domain.Offering, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFile, err)
	}

	if err := validator.New().Struct(file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	seen := make(map[string]struct{})
	offerings := make([]*domain.Offering, 0, len(file.Offerings))

	for _, o := range file.Offerings {
		offering := &domain.Offering{
			ID:           idOrNew(o.ID),
			Name:         o.Name,
			Icon:         o.Icon,
			SubOfferings: make([]domain.SubOffering, 0, len(o.SubOfferings)),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := remember(seen, offering.ID); err != nil {
			return nil, err
		}

		for _, s := range o.SubOfferings {
			sub := domain.SubOffering{
				ID:          idOrNew(s.ID),
				Name:        s.Name,
				Price:       s.Price,
				Duration:    s.Duration,
				Description: s.Description,
			}
			if err := remember(seen, sub.ID); err != nil {
				return nil, err
			}
			offering.SubOfferings = append(offering.SubOfferings, sub)
		}

		offerings = append(offerings, offering)
	}

	return offerings, nil
}

// Apply сохраняет категории в хранилище в порядке файла
func Apply(ctx context.Context, store CatalogWriter, offerings []*domain.Offering, log Logger) error {
	for _, o := range offerings {
		if _, err := store.Create(ctx, o); err != nil {
			return fmt.Errorf("%w: id=%s: %v", ErrStore, o.ID, err)
		}
	}

	if len(offerings) == 0 {
		log.Warn("Catalog seed is empty")
		return nil
	}

	log.Info("Catalog seeded: %d offerings", len(offerings))
	return nil
}

func idOrNew(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

func remember(seen map[string]struct{}, id string) error {
	if _, ok := seen[id]; ok {
		return fmt.Errorf("%w: duplicate id %q", ErrInvalidCatalog, id)
	}
	seen[id] = struct{}{}
	return nil
}
