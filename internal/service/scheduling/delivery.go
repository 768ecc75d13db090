package scheduling

import (
	"time"

	"github.com/m04kA/SMC-StoreAvailability/pkg/types"
)

// FilterForDelivery оставляет слоты, до которых курьер успевает доехать
// Слот проходит, если он строго позже now + estimatedMinutes
// Принимает только слоты на сегодня (доставка на другие дни не планируется)
func FilterForDelivery(slots []types.TimeString, now time.Time, estimatedMinutes int) []types.TimeString {
	if estimatedMinutes < 0 {
		estimatedMinutes = 0
	}

	minFeasible := now.Add(time.Duration(estimatedMinutes) * time.Minute)

	feasible := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if slot.On(now).After(minFeasible) {
			feasible = append(feasible, slot)
		}
	}

	return feasible
}
