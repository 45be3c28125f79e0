package entities

import "time"

// Profile describes the registered player behind a session
type Profile struct {
	Name     string    `json:"name"`
	JoinedAt time.Time `json:"joinedAt"`
	VIP      bool      `json:"isVIP"`
	Admin    bool      `json:"isAdmin"`
}
