package dto

import "time"

// CreateClientRequest represents the client creation request
type CreateClientRequest struct {
	Name                string     `json:"name" binding:"required"`
	Phone               *string    `json:"phone"`
	Email               *string    `json:"email"`
	ProfilePictureURL   *string    `json:"profilePictureUrl"`
	ProfilePictureColor *string    `json:"profilePictureColor"`
	LatestServiceDate   *time.Time `json:"latestServiceDate"`
}

// UpdateClientRequest represents a partial client update
type UpdateClientRequest struct {
	Name                *string    `json:"name"`
	Phone               *string    `json:"phone"`
	Email               *string    `json:"email"`
	ProfilePictureURL   *string    `json:"profilePictureUrl"`
	ProfilePictureColor *string    `json:"profilePictureColor"`
	LatestServiceDate   *time.Time `json:"latestServiceDate"`
}

// ClientResponse represents a client
type ClientResponse struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Phone               *string    `json:"phone,omitempty"`
	Email               *string    `json:"email,omitempty"`
	ProfilePictureURL   *string    `json:"profilePictureUrl,omitempty"`
	ProfilePictureColor *string    `json:"profilePictureColor,omitempty"`
	LatestServiceDate   *time.Time `json:"latestServiceDate,omitempty"`
}

// ClientListResponse represents the full client collection
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Total int              `json:"total"`
}
