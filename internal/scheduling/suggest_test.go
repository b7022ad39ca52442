package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliakbar-zohour/SalonBookingService/internal/domain"
)

func suggestedDates(suggestions []domain.SuggestedDate) []string {
	dates := make([]string, len(suggestions))
	for i, s := range suggestions {
		dates[i] = s.Date.Format(domain.DateFormat)
	}
	return dates
}

func TestSuggestDates_FirstThreeFreeDays(t *testing.T) {
	from := mustDate(t, "2025-10-05")

	suggestions := SuggestDates(1, 30, from, nil, nil, pastNow(t))

	assert.Equal(t, []string{"2025-10-06", "2025-10-07", "2025-10-08"}, suggestedDates(suggestions))
}

func TestSuggestDates_SkipsBlockedDays(t *testing.T) {
	from := mustDate(t, "2025-10-05")
	blocked := []*domain.BlockedDay{
		{ID: 1, Date: mustDate(t, "2025-10-06")},
		{ID: 2, Date: mustDate(t, "2025-10-08")},
	}

	suggestions := SuggestDates(1, 30, from, nil, blocked, pastNow(t))

	assert.Equal(t, []string{"2025-10-07", "2025-10-09", "2025-10-10"}, suggestedDates(suggestions))
}

func TestSuggestDates_SkipsFullyBookedDays(t *testing.T) {
	from := mustDate(t, "2025-10-05")
	bookings := []*domain.Booking{
		makeBooking(1, 1, mustDate(t, "2025-10-06"), "08:00", 720),
	}

	suggestions := SuggestDates(1, 30, from, bookings, nil, pastNow(t))

	assert.Equal(t, []string{"2025-10-07", "2025-10-08", "2025-10-09"}, suggestedDates(suggestions))
}

func TestSuggestDates_StartsAfterTodayWhenFromDateIsToday(t *testing.T) {
	now := time.Date(2025, 10, 5, 18, 0, 0, 0, time.UTC)
	from := mustDate(t, "2025-10-05")

	suggestions := SuggestDates(1, 30, from, nil, nil, now)

	require.NotEmpty(t, suggestions)
	// Сегодняшний день заново не предлагается
	assert.Equal(t, "2025-10-06", suggestions[0].Date.Format(domain.DateFormat))
}

func TestSuggestDates_PastFromDateScansFromToday(t *testing.T) {
	now := time.Date(2025, 10, 5, 12, 0, 0, 0, time.UTC)
	from := mustDate(t, "2025-09-20")

	suggestions := SuggestDates(1, 30, from, nil, nil, now)

	require.NotEmpty(t, suggestions)
	assert.Equal(t, "2025-10-06", suggestions[0].Date.Format(domain.DateFormat))
}

func TestSuggestDates_EmptyWhenHorizonExhausted(t *testing.T) {
	from := mustDate(t, "2025-10-05")

	// Блокируем все 7 дней горизонта
	blocked := make([]*domain.BlockedDay, 0, domain.SuggestionHorizonDays)
	for i := 1; i <= domain.SuggestionHorizonDays; i++ {
		blocked = append(blocked, &domain.BlockedDay{
			ID:   int64(i),
			Date: from.AddDate(0, 0, i),
		})
	}

	assert.Empty(t, SuggestDates(1, 30, from, nil, blocked, pastNow(t)))
}

func TestSuggestDates_CapAtThree(t *testing.T) {
	from := mustDate(t, "2025-10-05")

	suggestions := SuggestDates(1, 30, from, nil, nil, pastNow(t))

	assert.Len(t, suggestions, domain.MaxSuggestedDates)
}
