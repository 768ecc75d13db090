package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StoreAvailability/internal/domain"
	"github.com/m04kA/SMC-StoreAvailability/pkg/types"
)

// Service единая точка входа в движок расписания
// Состояния между вызовами нет: каждый вызов заново читает расписание
type Service struct {
	hoursRepo    HoursRepository
	horizonDays  int
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	hoursRepo HoursRepository,
	horizonDays int,
	logger Logger,
) *Service {
	if horizonDays <= 0 {
		horizonDays = domain.DefaultHorizonDays
	}

	return &Service{
		hoursRepo:    hoursRepo,
		horizonDays:  horizonDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// HorizonDays возвращает горизонт планирования самовывоза в днях
func (s *Service) HorizonDays() int {
	return s.horizonDays
}

// GetStoreHours возвращает недельное расписание
// При ошибке чтения возвращает nil и ErrDataFetch
func (s *Service) GetStoreHours(ctx context.Context) (domain.WeeklySchedule, error) {
	schedule, err := s.hoursRepo.FetchWeeklySchedule(ctx)
	if err != nil {
		s.logger.Error("GetStoreHours: failed to fetch weekly schedule: %v", err)
		return nil, fmt.Errorf("%w: weekly schedule: %v", ErrDataFetch, err)
	}

	if !schedule.IsComplete() {
		s.logger.Warn("GetStoreHours: schedule has %d of %d weekdays, missing days are treated as closed",
			len(schedule), len(domain.AllWeekdays))
	}

	return schedule, nil
}

// GetStoreSettings возвращает настройки магазина
// При ошибке чтения возвращает nil и ErrDataFetch
func (s *Service) GetStoreSettings(ctx context.Context) (*domain.StoreSettings, error) {
	settings, err := s.hoursRepo.FetchSettings(ctx)
	if err != nil {
		s.logger.Error("GetStoreSettings: failed to fetch settings: %v", err)
		return nil, fmt.Errorf("%w: store settings: %v", ErrDataFetch, err)
	}

	return settings, nil
}

// GetAvailableDays возвращает дни, на которые можно оформить заказ
// Самовывоз: рабочие дни в горизонте, начиная со startDate (нулевое значение - сегодня)
// Доставка: только сегодняшний день, расписание не читается
func (s *Service) GetAvailableDays(ctx context.Context, mode domain.FulfilmentMode, startDate time.Time) ([]time.Time, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	now := s.timeProvider.Now()

	if mode == domain.ModeDelivery {
		return []time.Time{startOfDay(now)}, nil
	}

	start := now
	if !startDate.IsZero() {
		start = dateIn(startDate, now.Location())
	}

	schedule, err := s.GetStoreHours(ctx)
	if err != nil {
		return nil, err
	}

	days := AvailableDays(schedule, start, s.horizonDays)

	s.logger.Info("GetAvailableDays: mode=%s, start=%s, found %d days",
		mode, start.Format(domain.DateFormat), len(days))

	return days, nil
}

// GetAvailableTimeSlots возвращает слоты HH:MM по возрастанию на выбранный день
// Самовывоз: слоты дня day
// Доставка: слоты на сегодня (day игнорируется), отфильтрованные по времени доставки зоны.
// Если магазин сейчас закрыт, слотов доставки нет
func (s *Service) GetAvailableTimeSlots(
	ctx context.Context,
	day time.Time,
	mode domain.FulfilmentMode,
	zone *domain.DeliveryZone,
) ([]types.TimeString, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	if mode == domain.ModeDelivery {
		if zone == nil {
			return nil, ErrZoneRequired
		}
		if !zone.Active {
			return nil, fmt.Errorf("%w: postcode=%s", ErrZoneInactive, zone.Postcode)
		}
	}

	now := s.timeProvider.Now()

	schedule, err := s.GetStoreHours(ctx)
	if err != nil {
		return nil, err
	}

	if mode == domain.ModePickup {
		target := dateIn(day, now.Location())
		entry, ok := schedule.ForDay(domain.WeekdayOf(target))
		if !ok {
			return []types.TimeString{}, nil
		}

		slots := SlotsForDay(target, entry, now)
		s.logger.Info("GetAvailableTimeSlots: mode=pickup, date=%s, generated %d slots",
			target.Format(domain.DateFormat), len(slots))
		return slots, nil
	}

	if !IsOpenAt(schedule, now) {
		s.logger.Info("GetAvailableTimeSlots: mode=delivery, store is closed, no slots")
		return []types.TimeString{}, nil
	}

	today := startOfDay(now)
	entry, _ := schedule.ForDay(domain.WeekdayOf(today))
	slots := FilterForDelivery(SlotsForDay(today, entry, now), now, zone.LeadMinutes())

	s.logger.Info("GetAvailableTimeSlots: mode=delivery, postcode=%s, eta=%dm, generated %d slots",
		zone.Postcode, zone.EstimatedMinutes, len(slots))

	return slots, nil
}

// IsOpenNow проверяет, открыт ли магазин сейчас
// Ошибка чтения расписания дает false: магазин никогда не считается открытым по ошибке
func (s *Service) IsOpenNow(ctx context.Context) bool {
	schedule, err := s.GetStoreHours(ctx)
	if err != nil {
		s.logger.Warn("IsOpenNow: treating store as closed: %v", err)
		return false
	}

	return IsOpenAt(schedule, s.timeProvider.Now())
}
