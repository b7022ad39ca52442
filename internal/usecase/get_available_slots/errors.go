package get_available_slots

import "errors"

var (
	// ErrNoServicesSelected возвращается, когда не выбрана ни одна услуга -
	// без длительности расчёт слотов не запускается
	ErrNoServicesSelected = errors.New("get_available_slots: no services selected")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
