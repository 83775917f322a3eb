package handler

import (
	"net/http"

	"github.com/atelierhq/atelier/internal/api/dto"
	"github.com/atelierhq/atelier/internal/core/domain"
	"github.com/atelierhq/atelier/internal/core/repository"
	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	clientRepo repository.ClientRepository
}

func NewClientHandler(clientRepo repository.ClientRepository) *ClientHandler {
	return &ClientHandler{clientRepo: clientRepo}
}

// CreateClient handles POST /clients
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	client := &domain.Client{
		Name:                req.Name,
		Phone:               req.Phone,
		Email:               req.Email,
		ProfilePictureURL:   req.ProfilePictureURL,
		ProfilePictureColor: req.ProfilePictureColor,
		LatestServiceDate:   req.LatestServiceDate,
	}

	id, err := h.clientRepo.Add(c.Request.Context(), client)
	if err != nil {
		respondError(c, err)
		return
	}

	// Return the stored document, not the request payload.
	created, err := h.clientRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toClientResponse(created))
}

// ListClients handles GET /clients
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.clientRepo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.ClientListResponse{
		Items: make([]dto.ClientResponse, len(clients)),
		Total: len(clients),
	}
	for i, client := range clients {
		response.Items[i] = toClientResponse(client)
	}

	c.JSON(http.StatusOK, response)
}

// GetClient handles GET /clients/:id
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.clientRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toClientResponse(client))
}

// UpdateClient handles PUT /clients/:id
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	upd := domain.ClientUpdate{
		Name:                req.Name,
		Phone:               req.Phone,
		Email:               req.Email,
		ProfilePictureURL:   req.ProfilePictureURL,
		ProfilePictureColor: req.ProfilePictureColor,
		LatestServiceDate:   req.LatestServiceDate,
	}
	if err := h.clientRepo.Update(c.Request.Context(), id, upd); err != nil {
		respondError(c, err)
		return
	}

	client, err := h.clientRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toClientResponse(client))
}

// DeleteClient handles DELETE /clients/:id. Services referencing the client
// are not cascaded.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	if err := h.clientRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func toClientResponse(client *domain.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:                  client.ID,
		Name:                client.Name,
		Phone:               client.Phone,
		Email:               client.Email,
		ProfilePictureURL:   client.ProfilePictureURL,
		ProfilePictureColor: client.ProfilePictureColor,
		LatestServiceDate:   client.LatestServiceDate,
	}
}
