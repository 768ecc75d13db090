package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StoreAvailability/internal/domain"
	zonesRepo "github.com/m04kA/SMC-StoreAvailability/internal/infra/storage/zones"
	"github.com/m04kA/SMC-StoreAvailability/internal/service/scheduling"
)

// UseCase use case для получения доступных слотов заказа
type UseCase struct {
	scheduling   SchedulingService
	zoneRepo     ZoneRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduling SchedulingService,
	zoneRepo ZoneRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduling:   scheduling,
		zoneRepo:     zoneRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: mode=%s, date=%s, postcode=%q",
		req.Mode, req.Date.Format(domain.DateFormat), req.Postcode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация даты относительно текущего дня
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now, req.Mode, uc.scheduling.HorizonDays()); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Для доставки получаем активную зону по индексу
	var zone *domain.DeliveryZone
	if req.Mode == domain.ModeDelivery {
		found, err := uc.zoneRepo.GetActiveByPostcode(ctx, req.Postcode)
		if err != nil {
			if errors.Is(err, zonesRepo.ErrZoneNotFound) {
				uc.logger.Warn("GetAvailableSlots: no active zone for postcode=%q", req.Postcode)
				return nil, ErrZoneNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get zone for postcode=%q: %v", req.Postcode, err)
			return nil, fmt.Errorf("%w: failed to get zone: %v", ErrInternal, err)
		}
		zone = found
	}

	// 4. Генерируем слоты
	slots, err := uc.scheduling.GetAvailableTimeSlots(ctx, req.Date, req.Mode, zone)
	if err != nil {
		if errors.Is(err, scheduling.ErrDataFetch) {
			return nil, fmt.Errorf("%w: %v", ErrScheduleUnavailable, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	resp := &Response{
		Date:  req.Date,
		Mode:  req.Mode,
		Slots: slots,
	}
	if zone != nil {
		resp.Postcode = domain.NormalizePostcode(zone.Postcode)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for mode=%s, date=%s",
		len(slots), req.Mode, req.Date.Format(domain.DateFormat))

	return resp, nil
}
