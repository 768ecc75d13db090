package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-StoreAvailability/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.Mode.IsValid() {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, req.Mode)
	}

	if req.Mode == domain.ModeDelivery && strings.TrimSpace(req.Postcode) == "" {
		return fmt.Errorf("%w: postcode is required for delivery", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что на дату можно запрашивать слоты
// Самовывоз: от сегодня до сегодня + horizonDays - 1. Доставка: только сегодня
func validateDate(requestDate time.Time, now time.Time, mode domain.FulfilmentMode, horizonDays int) error {
	requestDateOnly := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if requestDateOnly.Before(today) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}

	if mode == domain.ModeDelivery {
		if !requestDateOnly.Equal(today) {
			return fmt.Errorf("%w: delivery is available for today only", ErrInvalidDate)
		}
		return nil
	}

	lastDay := today.AddDate(0, 0, horizonDays-1)
	if requestDateOnly.After(lastDay) {
		return fmt.Errorf("%w: can only order %d days in advance", ErrDateTooFarInFuture, horizonDays)
	}

	return nil
}
