package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
// Level is the estimator's latest output; TargetLevel is the user's chosen
// study goal, used only for the derived out-of-scope flag in ledger listings.
type User struct {
	ID                uuid.UUID
	Email             string
	Username          string
	PasswordHash      string
	Level             Level
	TargetLevel       Level
	CompletedArticles int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
