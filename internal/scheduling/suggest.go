package scheduling

import (
	"time"

	"github.com/aliakbar-zohour/SalonBookingService/internal/domain"
)

// SuggestDates сканирует вперед от fromDate и возвращает до MaxSuggestedDates
// ближайших дат, на которых есть хотя бы один свободный слот.
//
// Сканирование начинается со дня, следующего за fromDate (если fromDate уже
// прошла или это сегодня - со дня, следующего за сегодняшним: предлагать
// исчерпанное "сегодня" заново смысла нет), и идет день за днем в пределах
// горизонта SuggestionHorizonDays. Заблокированные дни пропускаются без
// генерации слотов; для остальных достаточно первого найденного слота.
//
// Если в горизонте нет ни одной даты со свободными слотами, возвращается
// пустой список - вызывающий сам решает, что показать пользователю.
func SuggestDates(
	operatorID int64,
	durationMinutes int,
	fromDate time.Time,
	bookings []*domain.Booking,
	blockedDays []*domain.BlockedDay,
	now time.Time,
) []domain.SuggestedDate {
	suggestions := make([]domain.SuggestedDate, 0, domain.MaxSuggestedDates)

	base := truncateToDay(fromDate)
	todayBase := truncateToDay(now)
	if base.Before(todayBase) {
		base = todayBase
	}

	for offset := 1; offset <= domain.SuggestionHorizonDays; offset++ {
		candidate := base.AddDate(0, 0, offset)

		if IsDayBlocked(candidate, blockedDays) {
			continue
		}

		if HasAvailableSlot(operatorID, candidate, durationMinutes, bookings, blockedDays, now) {
			suggestions = append(suggestions, domain.SuggestedDate{Date: candidate})
			if len(suggestions) == domain.MaxSuggestedDates {
				break
			}
		}
	}

	return suggestions
}
