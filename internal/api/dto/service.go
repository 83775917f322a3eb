package dto

import "time"

// CreateServiceRequest represents the service creation request. ClientID is
// taken as given; it is not validated against the clients collection.
type CreateServiceRequest struct {
	Name        string    `json:"name" binding:"required"`
	ClientID    string    `json:"clientId" binding:"required"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Date        time.Time `json:"date" binding:"required"`
	PhotoURLs   []string  `json:"photoUrls"`
}

// UpdateServiceRequest represents a partial service update
type UpdateServiceRequest struct {
	Name        *string    `json:"name"`
	ClientID    *string    `json:"clientId"`
	Description *string    `json:"description"`
	Price       *float64   `json:"price"`
	Date        *time.Time `json:"date"`
}

// ServiceResponse represents a service
type ServiceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ClientID    string    `json:"clientId"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Date        time.Time `json:"date"`
	PhotoURLs   []string  `json:"photoUrls"`
}

// ServiceListResponse represents a list of services
type ServiceListResponse struct {
	Items []ServiceResponse `json:"items"`
	Total int               `json:"total"`
}
