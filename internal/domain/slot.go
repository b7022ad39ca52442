package domain

import (
	"time"

	"github.com/aliakbar-zohour/SalonBookingService/pkg/types"
)

// AvailableSlot represents a candidate time slot for a new booking.
// Computed fresh on every availability request, never persisted.
type AvailableSlot struct {
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
}

// SuggestedDate is a calendar date with at least one available slot,
// offered as an alternative when the requested date has none
type SuggestedDate struct {
	Date time.Time
}
