package models

import "time"

// Order is an immutable snapshot of cart lines captured at checkout commit
// time. History entries are append-only and never reordered.
type Order struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Lines     []CartLine `json:"lines"`
	Total     int        `json:"total"`
	CreatedAt time.Time  `json:"createdAt"`
}

// OrderTotal sums line subtotals.
func OrderTotal(lines []CartLine) int {
	total := 0
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}
