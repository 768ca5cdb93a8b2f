package catalog

import "errors"

var (
	// ErrItemNotFound возвращается, когда позиция каталога не найдена
	ErrItemNotFound = errors.New("catalog: item not found")

	// ErrCategoryNotFound возвращается, когда в категории нет ни одной позиции
	ErrCategoryNotFound = errors.New("catalog: category not found")

	// ErrUnavailable возвращается, когда ни один источник каталога не ответил
	ErrUnavailable = errors.New("catalog: catalog unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
