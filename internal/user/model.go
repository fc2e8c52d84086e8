package user

import "time"

// Subscription tiers a user can be on.
const (
	SubscriptionStarter  = "starter"
	SubscriptionPro      = "pro"
	SubscriptionBusiness = "business"
)

// User is the account record. PasswordHash never leaves the service layer and
// SessionToken is non-nil only while the user has an active session.
type User struct {
	ID                string
	Email             string
	PasswordHash      string
	Subscription      string
	AvatarURL         string
	SessionToken      *string
	Verified          bool
	VerificationToken string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
