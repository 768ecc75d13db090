package check_order_window

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-StoreAvailability/internal/domain"
)

func validateRequest(req *Request) error {
	if !req.Mode.IsValid() {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, req.Mode)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time == nil {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if req.Mode == domain.ModeDelivery && strings.TrimSpace(req.Postcode) == "" {
		return fmt.Errorf("%w: postcode is required for delivery", ErrInvalidInput)
	}

	return nil
}
