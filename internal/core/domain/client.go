package domain

import "time"

type Client struct {
	ID                  string
	Name                string
	Phone               *string
	Email               *string
	ProfilePictureURL   *string
	ProfilePictureColor *string
	LatestServiceDate   *time.Time
}

// ClientUpdate carries a partial update; nil fields are left untouched.
type ClientUpdate struct {
	Name                *string
	Phone               *string
	Email               *string
	ProfilePictureURL   *string
	ProfilePictureColor *string
	LatestServiceDate   *time.Time
}
