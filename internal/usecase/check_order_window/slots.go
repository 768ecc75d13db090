package check_order_window

import "github.com/m04kA/SMC-StoreAvailability/pkg/types"

func containsSlot(slots []types.TimeString, target types.TimeString) bool {
	for _, slot := range slots {
		if slot.Equal(target) {
			return true
		}
	}
	return false
}
