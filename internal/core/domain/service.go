package domain

import "time"

// Service is a piece of work performed for a client. ClientID is a logical
// reference only: it is never checked on write and a service may outlive the
// client it points to.
type Service struct {
	ID          string
	Name        string
	ClientID    string
	Description string
	Price       float64
	Date        time.Time
	PhotoURLs   []string
}

// ServiceUpdate carries a partial update; nil fields are left untouched.
type ServiceUpdate struct {
	Name        *string
	ClientID    *string
	Description *string
	Price       *float64
	Date        *time.Time
}
