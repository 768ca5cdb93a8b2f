package create_booking

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-ScheduleGateway/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ItemID == "" {
		return fmt.Errorf("%w: itemId is required", ErrInvalidInput)
	}

	if req.Datetime == "" {
		return fmt.Errorf("%w: datetime is required", ErrInvalidInput)
	}
	if _, _, err := domain.SplitDatetime(req.Datetime); err != nil {
		return fmt.Errorf("%w: invalid datetime format: %v", ErrInvalidInput, err)
	}

	if req.Client.Email == "" {
		return fmt.Errorf("%w: client email is required", ErrInvalidInput)
	}
	if !strings.Contains(req.Client.Email, "@") {
		return fmt.Errorf("%w: client email is malformed", ErrInvalidInput)
	}
	if req.Client.Name == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}

	if req.Count < 0 {
		return fmt.Errorf("%w: count must not be negative", ErrInvalidInput)
	}

	if req.Amount != "" {
		if _, err := strconv.ParseFloat(req.Amount, 64); err != nil {
			return fmt.Errorf("%w: amount must be a decimal string: %q", ErrInvalidInput, req.Amount)
		}
	}

	return nil
}

// resolveAmount возвращает сумму к оплате: переопределение из запроса
// или цена позиции каталога. Пустая строка — оплата не требуется
func resolveAmount(req *Request, item *domain.BookableItem) string {
	raw := req.Amount
	if raw == "" {
		raw = item.Price
	}
	if raw == "" {
		return ""
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value <= 0 {
		return ""
	}

	// Платежный провайдер требует ровно два знака после запятой
	return fmt.Sprintf("%.2f", value)
}
