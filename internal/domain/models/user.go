package models

// User is the minimal session identity: just an email, no credentials.
// The session is presentation-only and lives in memory.
type User struct {
	Email string `json:"email"`
}
