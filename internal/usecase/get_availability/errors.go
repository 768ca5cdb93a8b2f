package get_availability

import "errors"

var (
	// ErrInvalidRequest возвращается при некорректных входных данных
	ErrInvalidRequest = errors.New("get_availability: invalid request")

	// ErrInvalidDateRange возвращается, когда dateFrom позже dateTo
	ErrInvalidDateRange = errors.New("get_availability: dateFrom is after dateTo")

	// ErrItemNotFound возвращается, когда запрошенная позиция не найдена в каталоге
	ErrItemNotFound = errors.New("get_availability: item not found")

	// ErrCategoryNotFound возвращается, когда запрошенная категория пуста или не существует
	ErrCategoryNotFound = errors.New("get_availability: category not found")

	// ErrAvailabilityUnavailable возвращается, когда все стратегии разрешения
	// завершились ошибкой и расписание получить не удалось
	ErrAvailabilityUnavailable = errors.New("get_availability: availability is unavailable")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("get_availability: internal error")
)
