package suggest_dates

import "errors"

var (
	// ErrNoServicesSelected возвращается, когда не выбрана ни одна услуга
	ErrNoServicesSelected = errors.New("suggest_dates: no services selected")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("suggest_dates: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("suggest_dates: internal error")
)
