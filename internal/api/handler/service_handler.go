package handler

import (
	"net/http"
	"sync"

	"github.com/atelierhq/atelier/internal/api/dto"
	"github.com/atelierhq/atelier/internal/core/domain"
	"github.com/atelierhq/atelier/internal/core/repository"
	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	serviceRepo repository.ServiceRepository
}

func NewServiceHandler(serviceRepo repository.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{serviceRepo: serviceRepo}
}

// CreateService handles POST /services
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	service := &domain.Service{
		Name:        req.Name,
		ClientID:    req.ClientID,
		Description: req.Description,
		Price:       req.Price,
		Date:        req.Date,
		PhotoURLs:   req.PhotoURLs,
	}

	id, err := h.serviceRepo.Add(c.Request.Context(), service)
	if err != nil {
		respondError(c, err)
		return
	}

	created, err := h.serviceRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toServiceResponse(created))
}

// ListServices handles GET /services with an optional ?client_id= filter.
// An unknown client id yields an empty list, not an error.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	var services []*domain.Service
	var err error

	if clientID := c.Query("client_id"); clientID != "" {
		services, err = h.serviceRepo.GetByClientID(c.Request.Context(), clientID)
	} else {
		services, err = h.serviceRepo.GetAll(c.Request.Context())
	}
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.ServiceListResponse{
		Items: make([]dto.ServiceResponse, len(services)),
		Total: len(services),
	}
	for i, service := range services {
		response.Items[i] = toServiceResponse(service)
	}

	c.JSON(http.StatusOK, response)
}

// GetService handles GET /services/:id
func (h *ServiceHandler) GetService(c *gin.Context) {
	service, err := h.serviceRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toServiceResponse(service))
}

// UpdateService handles PUT /services/:id
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	upd := domain.ServiceUpdate{
		Name:        req.Name,
		ClientID:    req.ClientID,
		Description: req.Description,
		Price:       req.Price,
		Date:        req.Date,
	}
	if err := h.serviceRepo.Update(c.Request.Context(), id, upd); err != nil {
		respondError(c, err)
		return
	}

	service, err := h.serviceRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toServiceResponse(service))
}

// DeleteService handles DELETE /services/:id
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.serviceRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// UploadPhotos handles POST /services/:id/photos. Uploads fan out
// concurrently; the collected URLs are appended in submission order so the
// logical photo order matches what the operator selected.
func (h *ServiceHandler) UploadPhotos(c *gin.Context) {
	id := c.Param("id")

	form, err := c.MultipartForm()
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	files := form.File["photos"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: "No photos in request",
			Code:    http.StatusBadRequest,
		})
		return
	}

	urls := make([]string, len(files))
	errs := make([]error, len(files))
	var wg sync.WaitGroup
	for i, fh := range files {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f, err := fh.Open()
			if err != nil {
				errs[i] = err
				return
			}
			defer f.Close()
			urls[i], errs[i] = h.serviceRepo.UploadPhoto(c.Request.Context(), id, fh.Filename, f)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			respondError(c, err)
			return
		}
	}

	if err := h.serviceRepo.AddPhotoURLs(c.Request.Context(), id, urls); err != nil {
		respondError(c, err)
		return
	}

	service, err := h.serviceRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toServiceResponse(service))
}

func toServiceResponse(service *domain.Service) dto.ServiceResponse {
	return dto.ServiceResponse{
		ID:          service.ID,
		Name:        service.Name,
		ClientID:    service.ClientID,
		Description: service.Description,
		Price:       service.Price,
		Date:        service.Date,
		PhotoURLs:   service.PhotoURLs,
	}
}
