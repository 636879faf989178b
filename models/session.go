package models

// SessionIdentity is the payload signed into the session cookie.
type SessionIdentity struct {
	Email string `json:"email" binding:"required,email"`
}
