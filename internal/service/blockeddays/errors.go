package blockeddays

import "errors"

var (
	// ErrAlreadyBlocked возвращается при повторной блокировке даты
	ErrAlreadyBlocked = errors.New("day is already blocked")

	// ErrBlockedDayNotFound возвращается, когда дата не заблокирована
	ErrBlockedDayNotFound = errors.New("blocked day not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
