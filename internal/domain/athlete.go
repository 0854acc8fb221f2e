package domain

import "time"

// Athlete owns workout sessions. Only what the session service needs is modelled here;
// athletes themselves are managed elsewhere.
type Athlete struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
