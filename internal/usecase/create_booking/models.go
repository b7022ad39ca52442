package create_booking

import (
	"time"

	"github.com/aliakbar-zohour/SalonBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	OperatorID  int64            // ID оператора
	UserID      int64            // ID пользователя, создающего запись
	Date        time.Time        // Дата бронирования (без времени)
	StartTime   types.TimeString // Время начала слота (например, "10:00")
	Services    []string         // Выбранные услуги (определяют длительность)
	Title       string           // Заголовок записи (опционально)
	Description *string          // Дополнительное описание (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	OperatorID      int64            // ID оператора
	UserID          int64            // ID пользователя
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время конца
	DurationMinutes int              // Длительность в минутах
	Title           string           // Заголовок записи
	Services        []string         // Выбранные услуги
	Description     *string          // Описание

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
