package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	catalog "dalal-market/internal/catalogService"
	"dalal-market/internal/marketerrors"
	"dalal-market/internal/models"
	"dalal-market/services/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestRouter(user *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	if user != nil {
		router.Use(func(c *gin.Context) {
			helpers.SetCurrentUser(c, *user)
			c.Next()
		})
	}
	return router
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) (string, any) {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	msg, _ := resp["message"].(string)
	return msg, resp["data"]
}

func TestSearchListingsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockCatalogServiceInterface(ctrl)
	handler := NewCatalogHandler(mockService)

	router := newTestRouter(nil)
	router.GET("/listings", handler.SearchListingsHandler)

	tests := []struct {
		name           string
		query          string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:  "filters_forwarded",
			query: "?q=camry&category=cars&min_price=1000&max_price=5000&page=2&sort=price_asc",
			mockSetup: func() {
				mockService.EXPECT().
					SearchListings(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, p catalog.SearchParams) (catalog.ListingPage, error) {
						require.Equal(t, "camry", p.Query)
						require.Equal(t, "cars", p.CategorySlug)
						require.True(t, p.MinPrice.Equal(decimal.NewFromInt(1000)))
						require.True(t, p.MaxPrice.Equal(decimal.NewFromInt(5000)))
						require.Equal(t, 2, p.Page)
						require.Equal(t, models.SortPriceAsc, p.Sort)
						return catalog.ListingPage{Page: 2, PageSize: 20}, nil
					})
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "listings retrieved successfully",
		},
		{
			name:           "bad_price",
			query:          "?min_price=cheap",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:  "unknown_sort",
			query: "?sort=random",
			mockSetup: func() {
				mockService.EXPECT().
					SearchListings(gomock.Any(), gomock.Any()).
					Return(catalog.ListingPage{}, fmt.Errorf("service: %w - unknown sort", marketerrors.ErrInvalidInput))
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid input",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/listings"+tc.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)
			msg, data := decodeMessage(t, w)
			require.Contains(t, msg, tc.expectedMsg)
			if w.Code == http.StatusOK {
				require.Equal(t, []any{}, data.(map[string]any)["listings"])
			}
		})
	}
}

func TestGetListingHandler_Viewer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockCatalogServiceInterface(ctrl)
	handler := NewCatalogHandler(mockService)

	router := newTestRouter(&models.User{UserID: "staff1", IsStaff: true})
	router.GET("/listings/:listing_id", handler.GetListingHandler)

	mockService.EXPECT().
		GetListing(gomock.Any(), "listing1", catalog.Viewer{UserID: "staff1", Staff: true}).
		Return(models.ListingView{Listing: models.Listing{ListingID: "listing1", ViewsCount: 3}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/listings/listing1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	_, data := decodeMessage(t, w)
	require.Equal(t, float64(3), data.(map[string]any)["views_count"])
}

func TestUploadImageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockCatalogServiceInterface(ctrl)
	handler := NewCatalogHandler(mockService)

	router := newTestRouter(&models.User{UserID: "seller1", IsSeller: true})
	router.POST("/listings/:listing_id/images", handler.UploadImageHandler)

	newUpload := func(t *testing.T, field string, content []byte) *http.Request {
		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		part, err := writer.CreateFormFile(field, "photo.png")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/listings/listing1/images", &body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		return req
	}

	t.Run("stored", func(t *testing.T) {
		mockService.EXPECT().
			UploadImage(gomock.Any(), "seller1", "listing1", []byte("image-bytes")).
			Return(models.ListingImage{ImageID: "img1", ListingID: "listing1", IsMain: true}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newUpload(t, "image", []byte("image-bytes")))
		require.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("wrong_field", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, newUpload(t, "file", []byte("image-bytes")))
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejected_type", func(t *testing.T) {
		mockService.EXPECT().
			UploadImage(gomock.Any(), "seller1", "listing1", []byte("plain text")).
			Return(models.ListingImage{}, fmt.Errorf("service: %w - unsupported image type", marketerrors.ErrInvalidInput))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newUpload(t, "image", []byte("plain text")))
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBulkActionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockCatalogServiceInterface(ctrl)
	handler := NewCatalogHandler(mockService)

	router := newTestRouter(&models.User{UserID: "staff1", IsStaff: true})
	router.POST("/admin/listings/bulk", handler.BulkActionHandler)

	tests := []struct {
		name           string
		requestBody    string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "approve_two",
			requestBody: `{"action": "approve", "listing_ids": ["a", "b"]}`,
			mockSetup: func() {
				mockService.EXPECT().BulkAction(gomock.Any(), "staff1", "approve", []string{"a", "b"}).Return(2, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bulk action applied successfully",
		},
		{
			name:           "empty_ids",
			requestBody:    `{"action": "approve", "listing_ids": []}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "unknown_action",
			requestBody: `{"action": "delete", "listing_ids": ["a"]}`,
			mockSetup: func() {
				mockService.EXPECT().
					BulkAction(gomock.Any(), "staff1", "delete", []string{"a"}).
					Return(0, fmt.Errorf("service: %w - unknown action", marketerrors.ErrInvalidInput))
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid input",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/admin/listings/bulk", bytes.NewBufferString(tc.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)
			msg, data := decodeMessage(t, w)
			require.Contains(t, msg, tc.expectedMsg)
			if w.Code == http.StatusOK {
				require.Equal(t, float64(2), data.(map[string]any)["updated"])
			}
		})
	}
}

func TestMoveCategoryHandler_Cycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockCatalogServiceInterface(ctrl)
	handler := NewCatalogHandler(mockService)

	router := newTestRouter(&models.User{UserID: "staff1", IsStaff: true})
	router.PUT("/admin/categories/:category_id/parent", handler.MoveCategoryHandler)

	mockService.EXPECT().
		MoveCategory(gomock.Any(), "cars", "used-cars").
		Return(models.Category{}, fmt.Errorf("service: %w", marketerrors.ErrCategoryCycle))

	req := httptest.NewRequest(http.MethodPut, "/admin/categories/cars/parent", bytes.NewBufferString(`{"parent_id": "used-cars"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	msg, _ := decodeMessage(t, w)
	require.Equal(t, "parent would create a cycle", msg)
}
