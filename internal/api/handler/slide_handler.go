package handler

import (
	"net/http"
	"strconv"

	"github.com/atelierhq/atelier/internal/api/dto"
	"github.com/atelierhq/atelier/internal/core/domain"
	"github.com/atelierhq/atelier/internal/core/repository"
	"github.com/atelierhq/atelier/internal/sanitize"
	"github.com/gin-gonic/gin"
)

type SlideHandler struct {
	slideRepo repository.SlideRepository
}

func NewSlideHandler(slideRepo repository.SlideRepository) *SlideHandler {
	return &SlideHandler{slideRepo: slideRepo}
}

// ListSlides handles GET /slides (public). Slides come back in display order.
func (h *SlideHandler) ListSlides(c *gin.Context) {
	slides, err := h.slideRepo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.SlideListResponse{
		Items: make([]dto.SlideResponse, len(slides)),
		Total: len(slides),
	}
	for i, slide := range slides {
		response.Items[i] = toPublicSlideResponse(slide)
	}

	c.JSON(http.StatusOK, response)
}

// GetSlide handles GET /slides/:id
func (h *SlideHandler) GetSlide(c *gin.Context) {
	slide, err := h.slideRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSlideResponse(slide))
}

// CreateSlide handles POST /slides. The request is a multipart form carrying
// title, description, order and the image file; the image is stored before
// the slide document is created.
func (h *SlideHandler) CreateSlide(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: "No image in request",
			Code:    http.StatusBadRequest,
		})
		return
	}

	order := 0
	if raw := c.PostForm("order"); raw != "" {
		order, err = strconv.Atoi(raw)
		if err != nil {
			respondBadRequest(c, err)
			return
		}
	}

	slide := &domain.Slide{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Order:       order,
	}

	f, err := fh.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	created, err := h.slideRepo.Add(c.Request.Context(), slide, fh.Filename, f)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toSlideResponse(created))
}

// UpdateSlide handles PUT /slides/:id. The image is immutable; replacing it
// means deleting the slide and creating a new one.
func (h *SlideHandler) UpdateSlide(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateSlideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	upd := domain.SlideUpdate{
		Title:       req.Title,
		Description: req.Description,
		Order:       req.Order,
	}
	if err := h.slideRepo.Update(c.Request.Context(), id, upd); err != nil {
		respondError(c, err)
		return
	}

	slide, err := h.slideRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSlideResponse(slide))
}

// DeleteSlide handles DELETE /slides/:id
func (h *SlideHandler) DeleteSlide(c *gin.Context) {
	if err := h.slideRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func toSlideResponse(slide *domain.Slide) dto.SlideResponse {
	return dto.SlideResponse{
		ID:          slide.ID,
		Title:       slide.Title,
		Description: slide.Description,
		ImageURL:    slide.ImageURL,
		Order:       slide.Order,
		CreatedAt:   slide.CreatedAt,
		UpdatedAt:   slide.UpdatedAt,
	}
}

func toPublicSlideResponse(slide *domain.Slide) dto.SlideResponse {
	resp := toSlideResponse(slide)
	resp.Title = sanitize.HTML(resp.Title)
	resp.Description = sanitize.HTML(resp.Description)
	return resp
}
