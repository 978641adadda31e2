package create_booking

import "github.com/m04kA/SMC-ServiceBooking/internal/domain"

// Customer контактные данные клиента
type Customer struct {
	Name  string `validate:"required,max=200"`
	Email string `validate:"required,email,max=254"`
	Phone string `validate:"required,max=50"`
}

// Request модель запроса на создание бронирования
type Request struct {
	SubOfferingIDs []string `validate:"required,min=1,max=20,dive,required"` // в порядке выбора
	Date           string   `validate:"required"`                             // "2025-03-10" в часовом поясе бизнеса
	Time           string   `validate:"required"`                             // метка слота, например "10:00 AM"
	Customer       Customer
	Message        *string `validate:"omitnil,max=1000"`
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking      *domain.Booking
	ServiceNames []string // названия услуг в порядке выбора, снимок на момент создания
}
