package check_order_window

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StoreAvailability/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-StoreAvailability/internal/usecase/get_available_slots"
)

// UseCase решает, можно ли прямо сейчас оформить заказ на выбранный слот
type UseCase struct {
	store  StoreService
	slots  SlotsUseCase
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store StoreService, slots SlotsUseCase, logger Logger) *UseCase {
	return &UseCase{
		store:  store,
		slots:  slots,
		logger: logger,
	}
}

// Execute выполняет проверку окна заказа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckOrderWindow: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CheckOrderWindow: mode=%s, date=%s, time=%s, postcode=%q",
		req.Mode, req.Date.Format(domain.DateFormat), req.Time, req.Postcode)

	// 2. Получаем настройки магазина
	settings, err := uc.store.GetStoreSettings(ctx)
	if err != nil {
		uc.logger.Error("CheckOrderWindow: failed to get store settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get store settings: %v", ErrInternal, err)
	}

	// 3. Закрытый магазин принимает только предзаказы
	open := uc.store.IsOpenNow(ctx)
	if !open && !settings.AcceptPreorders {
		uc.logger.Info("CheckOrderWindow: store is closed and preorders are disabled")
		return &Response{Allowed: false, Reason: ReasonStoreClosed}, nil
	}

	// 4. Выбранный слот должен быть среди доступных
	available, err := uc.slots.Execute(ctx, &getAvailableSlots.Request{
		Date:     req.Date,
		Mode:     req.Mode,
		Postcode: req.Postcode,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrZoneNotFound):
			return nil, fmt.Errorf("%w: postcode=%q", ErrZoneNotFound, req.Postcode)
		case errors.Is(err, getAvailableSlots.ErrInvalidDate),
			errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			uc.logger.Info("CheckOrderWindow: date %s is outside the order window: %v",
				req.Date.Format(domain.DateFormat), err)
			return &Response{Allowed: false, Reason: ReasonSlotUnavailable}, nil
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("CheckOrderWindow: failed to get available slots: %v", err)
			return nil, fmt.Errorf("%w: failed to get available slots: %v", ErrInternal, err)
		}
	}

	if !containsSlot(available.Slots, *req.Time) {
		uc.logger.Info("CheckOrderWindow: slot %s is not available", req.Time)
		return &Response{Allowed: false, Reason: ReasonSlotUnavailable}, nil
	}

	resp := &Response{Allowed: true, IsPreorder: !open}

	uc.logger.Info("CheckOrderWindow: order allowed, preorder=%t", resp.IsPreorder)

	return resp, nil
}
