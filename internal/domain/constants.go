package domain

import "github.com/aliakbar-zohour/SalonBookingService/pkg/types"

// Working window: every calendar day opens and closes at the same time
const (
	WorkDayOpenTime  = types.TimeString("08:00")
	WorkDayCloseTime = types.TimeString("20:00")
)

// Slot computation constants
const (
	// SlotStepMinutes шаг генерации кандидатов начала слота.
	// Фиксированный: не зависит от запрошенной длительности.
	SlotStepMinutes = 30

	// ServiceBufferMinutes буфер на уборку/переход между клиентами,
	// добавляется один раз при непустом наборе услуг
	ServiceBufferMinutes = 10

	// DefaultBookingDurationMinutes длительность бронирования,
	// у которого длительность не была сохранена
	DefaultBookingDurationMinutes = 30
)

// Alternative-date suggestion constants
const (
	// SuggestionHorizonDays сколько дней вперед сканируется при поиске альтернативных дат
	SuggestionHorizonDays = 7

	// MaxSuggestedDates максимум предлагаемых альтернативных дат
	MaxSuggestedDates = 3
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 500
	MaxReasonLength      = 500
)

// DefaultBlockReason причина блокировки по умолчанию
const DefaultBlockReason = "روز بلاک شده"
