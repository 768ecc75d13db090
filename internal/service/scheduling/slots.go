package scheduling

import (
	"time"

	"github.com/m04kA/SMC-StoreAvailability/internal/domain"
	"github.com/m04kA/SMC-StoreAvailability/pkg/types"
)

// SlotsForDay генерирует слоты на день с шагом domain.SlotIntervalMinutes
// Сетка начинается с времени открытия (включительно) и заканчивается до времени закрытия (не включительно)
// Для сегодняшнего дня остаются только слоты строго позже now, остальные дни не фильтруются
func SlotsForDay(day time.Time, schedule domain.DaySchedule, now time.Time) []types.TimeString {
	if schedule.IsClosed || schedule.OpenTime == nil || schedule.CloseTime == nil {
		return []types.TimeString{}
	}

	// Шаг 1: Генерируем все слоты от открытия до закрытия
	allSlots := make([]types.TimeString, 0)
	current := *schedule.OpenTime

	for current.IsBefore(*schedule.CloseTime) {
		allSlots = append(allSlots, current)

		next, err := current.AddMinutes(domain.SlotIntervalMinutes)
		if err != nil {
			// Следующая граница уже за полночью
			break
		}
		current = next
	}

	// Шаг 2: Если день не сегодня - возвращаем все слоты
	if !isSameDay(day, now) {
		return allSlots
	}

	// Шаг 3: Для сегодня оставляем только будущие слоты
	futureSlots := make([]types.TimeString, 0, len(allSlots))
	for _, slot := range allSlots {
		if slot.On(now).After(now) {
			futureSlots = append(futureSlots, slot)
		}
	}

	return futureSlots
}
