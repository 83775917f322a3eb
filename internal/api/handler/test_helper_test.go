package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atelierhq/atelier/internal/api/dto"
	"github.com/atelierhq/atelier/internal/core/repository"
	"github.com/atelierhq/atelier/internal/core/service"
	"github.com/atelierhq/atelier/internal/infrastructure/sqlite"
	"github.com/atelierhq/atelier/internal/infrastructure/storage"
	"github.com/gin-gonic/gin"
)

// testEnv holds all test dependencies
type testEnv struct {
	db          *sqlite.DB
	store       *sqlite.DocumentStore
	router      *gin.Engine
	clientRepo  repository.ClientRepository
	serviceRepo repository.ServiceRepository
	priceRepo   repository.PriceRepository
	slideRepo   repository.SlideRepository
}

// setupTestEnv creates a test environment with an in-memory database and a
// temp-dir object store. Routes are registered without auth middleware; the
// admin gate has its own tests.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	objects, err := storage.NewLocalStore(t.TempDir(), "http://localhost:8323")
	if err != nil {
		t.Fatalf("failed to create object store: %v", err)
	}

	store := sqlite.NewDocumentStore(db)
	clientRepo := sqlite.NewClientRepository(store)
	serviceRepo := sqlite.NewServiceRepository(store, objects)
	priceRepo := sqlite.NewPriceRepository(store, objects)
	slideRepo := sqlite.NewSlideRepository(store, objects)
	dashboardService := service.NewDashboardService(clientRepo, serviceRepo)

	clientHandler := NewClientHandler(clientRepo)
	serviceHandler := NewServiceHandler(serviceRepo)
	priceHandler := NewPriceHandler(priceRepo)
	slideHandler := NewSlideHandler(slideRepo)
	dashboardHandler := NewDashboardHandler(dashboardService)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/prices", priceHandler.ListPrices)
	router.GET("/prices/:id", priceHandler.GetPrice)
	router.POST("/prices", priceHandler.CreatePrice)
	router.PUT("/prices/:id", priceHandler.UpdatePrice)
	router.DELETE("/prices/:id", priceHandler.DeletePrice)
	router.POST("/prices/:id/photos", priceHandler.UploadPhotos)
	router.DELETE("/prices/:id/photos", priceHandler.RemovePhoto)

	router.GET("/slides", slideHandler.ListSlides)
	router.GET("/slides/:id", slideHandler.GetSlide)
	router.POST("/slides", slideHandler.CreateSlide)
	router.PUT("/slides/:id", slideHandler.UpdateSlide)
	router.DELETE("/slides/:id", slideHandler.DeleteSlide)

	router.POST("/clients", clientHandler.CreateClient)
	router.GET("/clients", clientHandler.ListClients)
	router.GET("/clients/:id", clientHandler.GetClient)
	router.PUT("/clients/:id", clientHandler.UpdateClient)
	router.DELETE("/clients/:id", clientHandler.DeleteClient)

	router.POST("/services", serviceHandler.CreateService)
	router.GET("/services", serviceHandler.ListServices)
	router.GET("/services/:id", serviceHandler.GetService)
	router.PUT("/services/:id", serviceHandler.UpdateService)
	router.DELETE("/services/:id", serviceHandler.DeleteService)
	router.POST("/services/:id/photos", serviceHandler.UploadPhotos)

	router.GET("/dashboard", dashboardHandler.Overview)

	return &testEnv{
		db:          db,
		store:       store,
		router:      router,
		clientRepo:  clientRepo,
		serviceRepo: serviceRepo,
		priceRepo:   priceRepo,
		slideRepo:   slideRepo,
	}
}

// request performs an HTTP request with an optional JSON body
func (env *testEnv) request(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// rawRequest performs a request with a raw body and content type
func (env *testEnv) rawRequest(t *testing.T, method, path, contentType string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(method, path, body)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// multipartBody builds a multipart form with the given fields and files
func multipartBody(t *testing.T, fields map[string]string, files map[string][]string) (string, io.Reader) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := mw.WriteField(key, value); err != nil {
			t.Fatalf("failed to write field: %v", err)
		}
	}
	for key, names := range files {
		for _, name := range names {
			fw, err := mw.CreateFormFile(key, name)
			if err != nil {
				t.Fatalf("failed to create form file: %v", err)
			}
			if _, err := fw.Write([]byte("imagebytes")); err != nil {
				t.Fatalf("failed to write file: %v", err)
			}
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}
	return mw.FormDataContentType(), &buf
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	return out
}

func parseErrorResponse(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	return decode[dto.ErrorResponse](t, w)
}
