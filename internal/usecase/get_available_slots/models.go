package get_available_slots

import (
	"time"

	"github.com/aliakbar-zohour/SalonBookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	OperatorID int64     // ID оператора
	Services   []string  // Выбранные услуги (определяют длительность)
	Date       time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	OperatorID      int64     // ID оператора
	DurationMinutes int       // Требуемая длительность (услуги + буфер)
	Slots           []Slot    // Список доступных слотов, по возрастанию времени начала
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	EndTime         types.TimeString // Время конца слота
	DurationMinutes int              // Длительность слота в минутах
}
