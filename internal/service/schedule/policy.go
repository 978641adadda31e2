package schedule

import (
	"fmt"
	"time"
	_ "time/tzdata" // часовой пояс должен загружаться и в минимальных контейнерах

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
)

// Policy политика расписания: фиксированный набор слотов и единый часовой пояс бизнеса.
// Состояния не хранит.
type Policy struct {
	location     *time.Location
	timeProvider TimeProvider
	slots        map[string]struct{}
}

// NewPolicy создает политику в часовом поясе domain.BusinessTimezone
func NewPolicy(timeProvider TimeProvider) (*Policy, error) {
	loc, err := time.LoadLocation(domain.BusinessTimezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTimezone, err)
	}

	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}

	slots := make(map[string]struct{}, len(domain.BusinessSlots))
	for _, s := range domain.BusinessSlots {
		slots[s] = struct{}{}
	}

	return &Policy{
		location:     loc,
		timeProvider: timeProvider,
		slots:        slots,
	}, nil
}

// Location возвращает часовой пояс бизнеса
func (p *Policy) Location() *time.Location {
	return p.location
}

// Now возвращает текущее время в часовом поясе бизнеса
func (p *Policy) Now() time.Time {
	return p.timeProvider.Now().In(p.location)
}

// Slots возвращает копию списка слотов в порядке следования
func (p *Policy) Slots() []string {
	return append([]string(nil), domain.BusinessSlots...)
}

// IsWithinBusinessHours проверяет, что time - один из фиксированных слотов
func (p *Policy) IsWithinBusinessHours(label string) bool {
	_, ok := p.slots[label]
	return ok
}

// MinSelectableDate возвращает сегодняшнюю дату (полночь) в часовом поясе бизнеса
func (p *Policy) MinSelectableDate() time.Time {
	now := p.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, p.location)
}

// IsDateInPast проверяет, что дата раньше MinSelectableDate
func (p *Policy) IsDateInPast(date time.Time) bool {
	return p.Normalize(date).Before(p.MinSelectableDate())
}

// ParseDate разбирает дату формата YYYY-MM-DD в часовом поясе бизнеса
func (p *Policy) ParseDate(value string) (time.Time, error) {
	date, err := time.ParseInLocation(domain.DateFormat, value, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return date, nil
}

// ValidateSlot проверяет, что (date, time) можно предложить клиенту
func (p *Policy) ValidateSlot(date time.Time, label string) error {
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}
	if !p.IsWithinBusinessHours(label) {
		return fmt.Errorf("%w: %q", ErrOutsideBusinessHours, label)
	}
	if p.IsDateInPast(date) {
		return fmt.Errorf("%w: %s is before %s", ErrDateInPast,
			date.Format(domain.DateFormat), p.MinSelectableDate().Format(domain.DateFormat))
	}
	return nil
}

// Normalize приводит дату к полуночи того же календарного дня в часовом поясе бизнеса.
// Календарный день берётся как есть, без пересчёта между поясами.
func (p *Policy) Normalize(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, p.location)
}

// FormatDate форматирует дату для писем: "Monday, 10 March 2025"
func (p *Policy) FormatDate(date time.Time) string {
	return p.Normalize(date).Format("Monday, 2 January 2006")
}

// FormatTime добавляет аббревиатуру часового пояса к слоту: "10:00 AM WIB"
func (p *Policy) FormatTime(label string) string {
	return label + " " + domain.BusinessTimezoneAbbr
}
