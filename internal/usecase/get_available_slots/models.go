package get_available_slots

import "time"

// Slot временной слот с флагом доступности
type Slot struct {
	Time      string
	Available bool
}

// Response модель ответа со слотами на дату
type Response struct {
	Date        time.Time
	Slots       []Slot
	BookedTimes []string // занятые слоты в порядке следования
}
