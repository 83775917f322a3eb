package handler

import (
	"net/http"
	"sync"

	"github.com/atelierhq/atelier/internal/api/dto"
	"github.com/atelierhq/atelier/internal/core/domain"
	"github.com/atelierhq/atelier/internal/core/repository"
	"github.com/atelierhq/atelier/internal/sanitize"
	"github.com/gin-gonic/gin"
)

type PriceHandler struct {
	priceRepo repository.PriceRepository
}

func NewPriceHandler(priceRepo repository.PriceRepository) *PriceHandler {
	return &PriceHandler{priceRepo: priceRepo}
}

// ListPrices handles GET /prices (public). Description fields are sanitized
// before they leave the API.
func (h *PriceHandler) ListPrices(c *gin.Context) {
	prices, err := h.priceRepo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.PriceListResponse{
		Items: make([]dto.PriceResponse, len(prices)),
		Total: len(prices),
	}
	for i, price := range prices {
		response.Items[i] = toPublicPriceResponse(price)
	}

	c.JSON(http.StatusOK, response)
}

// GetPrice handles GET /prices/:id (public)
func (h *PriceHandler) GetPrice(c *gin.Context) {
	price, err := h.priceRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPublicPriceResponse(price))
}

// CreatePrice handles POST /prices. An uncoercible price value is rejected
// before anything reaches the database.
func (h *PriceHandler) CreatePrice(c *gin.Context) {
	var req dto.CreatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	price := &domain.Price{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		FullDescription:  req.FullDescription,
		Price:            req.Price,
		Currency:         req.Currency,
		PhotoURLs:        req.PhotoURLs,
	}

	id, err := h.priceRepo.Add(c.Request.Context(), price)
	if err != nil {
		respondError(c, err)
		return
	}

	created, err := h.priceRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toPriceResponse(created))
}

// UpdatePrice handles PUT /prices/:id
func (h *PriceHandler) UpdatePrice(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	upd := domain.PriceUpdate{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		FullDescription:  req.FullDescription,
		Price:            req.Price,
		Currency:         req.Currency,
	}
	if err := h.priceRepo.Update(c.Request.Context(), id, upd); err != nil {
		respondError(c, err)
		return
	}

	price, err := h.priceRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPriceResponse(price))
}

// DeletePrice handles DELETE /prices/:id
func (h *PriceHandler) DeletePrice(c *gin.Context) {
	if err := h.priceRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// UploadPhotos handles POST /prices/:id/photos. Uploads fan out concurrently
// and URLs are attached in submission order.
func (h *PriceHandler) UploadPhotos(c *gin.Context) {
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
			urls[i], errs[i] = h.priceRepo.UploadPhoto(c.Request.Context(), id, fh.Filename, f)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			respondError(c, err)
			return
		}
	}

	for _, url := range urls {
		if err := h.priceRepo.AddPhotoURL(c.Request.Context(), id, url); err != nil {
			respondError(c, err)
			return
		}
	}

	price, err := h.priceRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPriceResponse(price))
}

// RemovePhoto handles DELETE /prices/:id/photos. Removing a URL that is no
// longer on the price is a no-op, so retried deletes converge.
func (h *PriceHandler) RemovePhoto(c *gin.Context) {
	id := c.Param("id")

	var req dto.RemovePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.priceRepo.RemovePhotoURL(c.Request.Context(), id, req.URL); err != nil {
		respondError(c, err)
		return
	}

	price, err := h.priceRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPriceResponse(price))
}

func toPriceResponse(price *domain.Price) dto.PriceResponse {
	return dto.PriceResponse{
		ID:               price.ID,
		Title:            price.Title,
		ShortDescription: price.ShortDescription,
		FullDescription:  price.FullDescription,
		Price:            price.Price,
		Currency:         price.Currency,
		PhotoURLs:        price.PhotoURLs,
	}
}

func toPublicPriceResponse(price *domain.Price) dto.PriceResponse {
	resp := toPriceResponse(price)
	resp.ShortDescription = sanitize.HTML(resp.ShortDescription)
	resp.FullDescription = sanitize.HTML(resp.FullDescription)
	return resp
}
