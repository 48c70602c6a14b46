package model

import "time"

// Session is one reviewer login. The token is an opaque unguessable value
// handed to the client as a bearer token; the row existing (and being young
// enough) is what makes the token valid.
type Session struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	Token string `gorm:"uniqueIndex;not null" json:"token"`

	ReviewerEmail string `gorm:"not null;index" json:"reviewer_email"`
	ReviewerName  string `json:"reviewer_name"`

	CreatedAt time.Time `json:"created_at"`
}

// Reviewer is the identity attached to a request after token validation.
// Reviews record it at submission time, so expiring the session later never
// invalidates past reviews.
type Reviewer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
