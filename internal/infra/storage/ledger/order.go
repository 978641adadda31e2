package ledger

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
)

// sortByClock упорядочивает метки слотов по времени суток ("09:00 AM" < "01:00 PM")
func sortByClock(labels []string) {
	sort.SliceStable(labels, func(i, j int) bool {
		a, errA := time.Parse(domain.SlotFormat, labels[i])
		b, errB := time.Parse(domain.SlotFormat, labels[j])
		if errA != nil || errB != nil {
			return labels[i] < labels[j]
		}
		return a.Before(b)
	})
}
