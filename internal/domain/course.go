package domain

import "time"

// Course represents a sellable course. Price is in whole rupees; the
// gateway is charged in paise (price * 100).
type Course struct {
	ID        string
	Name      string
	Price     int64
	CreatedAt time.Time
}
