package get_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleGateway/internal/domain"
)

// validate проверяет входные данные и заполняет значения по умолчанию
//
// Проверка диапазона дат выполняется до любых обращений к провайдеру:
// заведомо некорректный запрос не должен стоить внешнего вызова
func (uc *UseCase) validate(req *Request) error {
	if req.ItemID == "" && req.CategoryID == "" {
		return fmt.Errorf("%w: either itemId or categoryId is required", ErrInvalidRequest)
	}
	if req.ItemID != "" && req.CategoryID != "" {
		return fmt.Errorf("%w: itemId and categoryId are mutually exclusive", ErrInvalidRequest)
	}

	if req.DateFrom == "" {
		return fmt.Errorf("%w: dateFrom is required", ErrInvalidRequest)
	}
	from, err := time.Parse(domain.DateFormat, req.DateFrom)
	if err != nil {
		return fmt.Errorf("%w: dateFrom must be YYYY-MM-DD: %q", ErrInvalidRequest, req.DateFrom)
	}

	if req.DateTo == "" {
		req.DateTo = from.AddDate(0, 0, uc.defaultRangeDays).Format(domain.DateFormat)
	}
	to, err := time.Parse(domain.DateFormat, req.DateTo)
	if err != nil {
		return fmt.Errorf("%w: dateTo must be YYYY-MM-DD: %q", ErrInvalidRequest, req.DateTo)
	}

	if from.After(to) {
		return fmt.Errorf("%w: %s > %s", ErrInvalidDateRange, req.DateFrom, req.DateTo)
	}

	if req.PartySize <= 0 {
		req.PartySize = domain.DefaultPartySize
	}

	switch req.KindHint {
	case "", string(domain.KindService), string(domain.KindEvent):
	default:
		return fmt.Errorf("%w: unknown kind hint %q", ErrInvalidRequest, req.KindHint)
	}

	return nil
}
