package scheduling

import (
	"time"

	"github.com/aliakbar-zohour/SalonBookingService/internal/domain"
	"github.com/aliakbar-zohour/SalonBookingService/pkg/types"
)

// AvailableSlots вычисляет упорядоченный список свободных слотов оператора
// на указанную дату для запрошенной длительности.
//
// Кандидаты начала генерируются с шагом SlotStepMinutes от открытия рабочего
// окна. Шаг фиксированный и НЕ зависит от длительности: для 50-минутной услуги
// кандидаты идут 08:00, 08:30, 09:00... и каждый проверяется независимо.
//
// Кандидат попадает в результат, если:
//   - его конец не выходит за время закрытия;
//   - интервал свободен по IsSlotFree;
//   - дата не сегодня, либо начало строго позже now.
//
// Если дата заблокирована, сразу возвращается пустой список.
// Прошедшие даты также дают пустой список.
//
// Предусловие: durationMinutes > 0. При нуле услуги не выбраны,
// и вызывающий не должен запускать расчёт.
func AvailableSlots(
	operatorID int64,
	date time.Time,
	durationMinutes int,
	bookings []*domain.Booking,
	blockedDays []*domain.BlockedDay,
	now time.Time,
) []domain.AvailableSlot {
	slots := make([]domain.AvailableSlot, 0)

	if IsDayBlocked(date, blockedDays) {
		return slots
	}

	if isDateInPast(date, now) {
		return slots
	}

	today := isSameDay(date, now)
	currentTime := types.NewTimeString(now)

	for start := domain.WorkDayOpenTime; start.IsBefore(domain.WorkDayCloseTime); {
		end, err := start.AddMinutes(durationMinutes)
		if err != nil || end.IsAfter(domain.WorkDayCloseTime) {
			// Конец слота монотонно растет - дальше все кандидаты тоже не влезут
			break
		}

		if today && !start.IsAfter(currentTime) {
			start = advance(start)
			continue
		}

		if !IsSlotFree(operatorID, date, start, durationMinutes, bookings, nil) {
			start = advance(start)
			continue
		}

		slots = append(slots, domain.AvailableSlot{
			StartTime:       start,
			EndTime:         end,
			DurationMinutes: durationMinutes,
		})

		start = advance(start)
	}

	return slots
}

// HasAvailableSlot проверяет, есть ли хотя бы один свободный слот на дату.
// Та же логика, что и AvailableSlots, но с выходом на первом найденном слоте.
func HasAvailableSlot(
	operatorID int64,
	date time.Time,
	durationMinutes int,
	bookings []*domain.Booking,
	blockedDays []*domain.BlockedDay,
	now time.Time,
) bool {
	if IsDayBlocked(date, blockedDays) {
		return false
	}

	if isDateInPast(date, now) {
		return false
	}

	today := isSameDay(date, now)
	currentTime := types.NewTimeString(now)

	for start := domain.WorkDayOpenTime; start.IsBefore(domain.WorkDayCloseTime); {
		end, err := start.AddMinutes(durationMinutes)
		if err != nil || end.IsAfter(domain.WorkDayCloseTime) {
			break
		}

		if today && !start.IsAfter(currentTime) {
			start = advance(start)
			continue
		}

		if IsSlotFree(operatorID, date, start, durationMinutes, bookings, nil) {
			return true
		}

		start = advance(start)
	}

	return false
}

// advance сдвигает кандидата начала на фиксированный шаг.
// Переполнение суток шагом 30 минут от 08:00 невозможно, но AddMinutes
// возвращает ошибку - в этом случае возвращаем время закрытия, чтобы
// цикл генерации завершился.
func advance(start types.TimeString) types.TimeString {
	next, err := start.AddMinutes(domain.SlotStepMinutes)
	if err != nil {
		return domain.WorkDayCloseTime
	}
	return next
}
