package domain

import "time"

// User represents a registered owner of tasks.
type User struct {
	ID        int64
	Username  string
	CreatedAt time.Time
}
