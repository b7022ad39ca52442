package domain

import "time"

// BlockedDay represents a calendar date on which no bookings may be made.
// The block is global: it applies to every operator.
type BlockedDay struct {
	ID     int64
	Date   time.Time
	Reason *string

	CreatedAt time.Time
}

// IsOnDate returns true if the block covers the given calendar date
func (b *BlockedDay) IsOnDate(date time.Time) bool {
	y1, m1, d1 := b.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
