package scheduling

import (
	"time"

	"github.com/aliakbar-zohour/SalonBookingService/internal/domain"
	"github.com/aliakbar-zohour/SalonBookingService/pkg/types"
)

// IsSlotFree проверяет, свободен ли интервал [start, start+duration) у оператора
// на указанную дату. Учитываются только бронирования того же оператора на тот же
// календарный день; чужие операторы и другие даты не конфликтуют.
//
// Правило пересечения строгое, интервалы полуоткрытые: [s1,e1) и [s2,e2)
// конфликтуют тогда и только тогда, когда s1 < e2 И s2 < e1.
// Бронирование, заканчивающееся ровно в момент начала другого, НЕ конфликт -
// записи "впритык" разрешены.
//
// excludeBookingID исключает собственную запись из проверки: при переносе
// существующего бронирования оно не должно конфликтовать само с собой.
func IsSlotFree(
	operatorID int64,
	date time.Time,
	start types.TimeString,
	durationMinutes int,
	bookings []*domain.Booking,
	excludeBookingID *int64,
) bool {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		// Интервал выходит за пределы суток - забронировать его нельзя
		return false
	}

	for _, booking := range bookings {
		if booking.OperatorID != operatorID {
			continue
		}
		if !booking.IsOnDate(date) {
			continue
		}
		if excludeBookingID != nil && booking.ID == *excludeBookingID {
			continue
		}

		bookingStart := booking.StartTime
		bookingEnd, err := booking.EndTime()
		if err != nil {
			// Некорректное время существующей записи - пропускаем её
			continue
		}

		// Строгие неравенства: граничные случаи не считаются пересечением
		if bookingStart.IsBefore(end) && bookingEnd.IsAfter(start) {
			return false
		}
	}

	return true
}
