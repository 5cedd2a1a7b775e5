package domain

import "time"

// User represents a bot user
type User struct {
	ID           int
	UserID       int64
	Username     string
	RegisteredAt time.Time
	Authorized   bool
}

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle             UserState = "idle"
	StateChoosingType     UserState = "choosing_type"
	StateAwaitingDocument UserState = "awaiting_document"
	StateAwaitingPhoto    UserState = "awaiting_photo"
)

// StateData holds temporary data for user's current state
type StateData struct {
	State UserState
}
