package create_booking

import "errors"

var (
	// ErrNoServicesSelected возвращается, когда не выбрана ни одна услуга
	ErrNoServicesSelected = errors.New("create_booking: no services selected")

	// ErrInvalidDate возвращается при некорректной (прошедшей) дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDayBlocked возвращается, когда дата находится в списке заблокированных дней
	ErrDayBlocked = errors.New("create_booking: day is blocked")

	// ErrOutsideWorkingHours возвращается, когда слот не помещается в рабочее окно
	ErrOutsideWorkingHours = errors.New("create_booking: slot is outside working hours")

	// ErrTooLateToBook возвращается, когда начало слота сегодня уже прошло
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrSlotTaken возвращается финальной проверкой конфликта: слот был свободен
	// при расчёте доступности, но занят к моменту фиксации. Отдельная ошибка,
	// чтобы вызывающий предложил выбрать другое время, а не чинить ввод.
	ErrSlotTaken = errors.New("create_booking: slot is no longer available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
