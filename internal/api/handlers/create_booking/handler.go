package create_booking

import (
	"errors"
	"net/http"

	"github.com/aliakbar-zohour/SalonBookingService/internal/api/handlers"
	"github.com/aliakbar-zohour/SalonBookingService/internal/api/middleware"
	createBooking "github.com/aliakbar-zohour/SalonBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты (YYYY-MM-DD) или времени (HH:MM)"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNoServicesSelected   = "не выбрана ни одна услуга"
	msgInvalidBookingDate   = "некорректная дата бронирования"
	msgDayBlocked           = "выбранная дата заблокирована"
	msgOutsideWorkingHours  = "слот выходит за пределы рабочего окна"
	msgTooLateToBook        = "слишком поздно для бронирования этого слота"
	msgSlotTaken            = "выбранный временной слот уже занят"
	msgInvalidInput         = "некорректные входные данные"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: user_id=%d, operator_id=%d, time=%s",
				userID, req.OperatorID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createBooking.ErrNoServicesSelected):
			h.logger.Warn("POST /bookings - No services selected: user_id=%d, operator_id=%d", userID, req.OperatorID)
			handlers.RespondBadRequest(w, msgNoServicesSelected)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: user_id=%d, operator_id=%d", userID, req.OperatorID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrDayBlocked):
			h.logger.Warn("POST /bookings - Day blocked: user_id=%d, operator_id=%d, date=%s",
				userID, req.OperatorID, req.Date)
			handlers.RespondBadRequest(w, msgDayBlocked)

		case errors.Is(err, createBooking.ErrOutsideWorkingHours):
			h.logger.Warn("POST /bookings - Outside working hours: user_id=%d, operator_id=%d, time=%s",
				userID, req.OperatorID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: user_id=%d, operator_id=%d", userID, req.OperatorID)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, operator_id=%d, error=%v",
				userID, req.OperatorID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, operator_id=%d, error=%v",
				userID, req.OperatorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, operator_id=%d",
		result.ID, userID, req.OperatorID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
