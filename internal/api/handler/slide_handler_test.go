package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/atelierhq/atelier/internal/api/dto"
)

func createTestSlide(t *testing.T, env *testEnv, title string, order string) dto.SlideResponse {
	t.Helper()

	contentType, body := multipartBody(t,
		map[string]string{"title": title, "description": "desc", "order": order},
		map[string][]string{"image": {"slide.jpg"}},
	)
	w := env.rawRequest(t, http.MethodPost, "/slides", contentType, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	return decode[dto.SlideResponse](t, w)
}

func TestCreateSlide(t *testing.T) {
	env := setupTestEnv(t)

	slide := createTestSlide(t, env, "Welcome", "1")
	if slide.ID == "" {
		t.Error("expected an id on the created slide")
	}
	if !strings.Contains(slide.ImageURL, "/assets/slides/images/") {
		t.Errorf("unexpected image url: %s", slide.ImageURL)
	}
	if slide.Order != 1 {
		t.Errorf("expected order 1, got %d", slide.Order)
	}
	if slide.CreatedAt.IsZero() || slide.UpdatedAt.IsZero() {
		t.Error("expected server-assigned timestamps")
	}
}

func TestCreateSlideWithoutImage(t *testing.T) {
	env := setupTestEnv(t)

	contentType, body := multipartBody(t, map[string]string{"title": "No image"}, nil)
	w := env.rawRequest(t, http.MethodPost, "/slides", contentType, body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreateSlideBadOrder(t *testing.T) {
	env := setupTestEnv(t)

	contentType, body := multipartBody(t,
		map[string]string{"title": "X", "order": "first"},
		map[string][]string{"image": {"slide.jpg"}},
	)
	w := env.rawRequest(t, http.MethodPost, "/slides", contentType, body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestListSlidesOrdered(t *testing.T) {
	env := setupTestEnv(t)

	createTestSlide(t, env, "Third", "3")
	createTestSlide(t, env, "First", "1")
	createTestSlide(t, env, "Second", "2")

	w := env.request(t, http.MethodGet, "/slides", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	resp := decode[dto.SlideListResponse](t, w)
	if resp.Total != 3 {
		t.Fatalf("expected 3 slides, got %d", resp.Total)
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if resp.Items[i].Title != want {
			t.Errorf("position %d: expected %q, got %q", i, want, resp.Items[i].Title)
		}
	}
}

func TestListSlidesSanitizesText(t *testing.T) {
	env := setupTestEnv(t)

	createTestSlide(t, env, `Hi <script>alert("x")</script>there`, "1")

	w := env.request(t, http.MethodGet, "/slides", nil)
	resp := decode[dto.SlideListResponse](t, w)
	if len(resp.Items) != 1 {
		t.Fatalf("expected 1 slide, got %d", len(resp.Items))
	}
	if strings.Contains(resp.Items[0].Title, "<script>") {
		t.Errorf("script tag survived sanitization: %q", resp.Items[0].Title)
	}
}

func TestUpdateSlide(t *testing.T) {
	env := setupTestEnv(t)

	slide := createTestSlide(t, env, "Old", "1")

	w := env.request(t, http.MethodPut, "/slides/"+slide.ID, map[string]any{
		"title": "New",
		"order": 5,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := decode[dto.SlideResponse](t, w)
	if resp.Title != "New" {
		t.Errorf("expected title 'New', got %q", resp.Title)
	}
	if resp.Order != 5 {
		t.Errorf("expected order 5, got %d", resp.Order)
	}
	// The image is immutable
	if resp.ImageURL != slide.ImageURL {
		t.Errorf("image url changed: %s -> %s", slide.ImageURL, resp.ImageURL)
	}
}

func TestDeleteSlide(t *testing.T) {
	env := setupTestEnv(t)

	slide := createTestSlide(t, env, "Gone", "1")

	w := env.request(t, http.MethodDelete, "/slides/"+slide.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	w = env.request(t, http.MethodGet, "/slides/"+slide.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestDeleteSlideNotFound(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodDelete, "/slides/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
