package repo

import "time"

type ChangeFilter struct {
	MotorcycleID string
	Action       string
	Since        *time.Time
	Until        *time.Time
	Offset       *int
	Limit        *int
}
