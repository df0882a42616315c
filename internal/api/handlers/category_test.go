package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vietcommerce/marketplace/internal/api/handlers"
	appErrors "github.com/vietcommerce/marketplace/internal/errors"
	"github.com/vietcommerce/marketplace/internal/models"
	"github.com/vietcommerce/marketplace/internal/services/mocks"
	"github.com/vietcommerce/marketplace/internal/testutils"
	"github.com/vietcommerce/marketplace/internal/utils/response"
)

func TestCategoryHandler_CreateCategory(t *testing.T) {
	adminID := uuid.New()

	t.Run("Success - Category Created", func(t *testing.T) {
		mockService := new(mocks.CategoryService)
		handler := handlers.NewCategoryHandler(mockService)

		category := &models.Category{ID: uuid.New(), Name: "Peripherals"}

		mockService.On("CreateCategory", mock.Anything, mock.MatchedBy(func(req *models.CreateCategoryRequest) bool {
			return req.Name == "Peripherals"
		})).Return(category, nil).Once()

		body := []byte(`{"name":"Peripherals"}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/categories",
			bytes.NewReader(body), adminID, models.RoleAdmin, nil)
		rr := httptest.NewRecorder()

		handler.CreateCategory()(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Empty Name", func(t *testing.T) {
		mockService := new(mocks.CategoryService)
		handler := handlers.NewCategoryHandler(mockService)

		body := []byte(`{"name":""}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/categories",
			bytes.NewReader(body), adminID, models.RoleAdmin, nil)
		rr := httptest.NewRecorder()

		handler.CreateCategory()(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything)
	})
}

func TestCategoryHandler_GetCategory(t *testing.T) {
	categoryID := uuid.New()

	t.Run("Success - Category Returned", func(t *testing.T) {
		mockService := new(mocks.CategoryService)
		handler := handlers.NewCategoryHandler(mockService)

		mockService.On("GetCategoryByID", mock.Anything, categoryID).
			Return(&models.Category{ID: categoryID, Name: "Peripherals"}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/categories/"+categoryID.String(),
			nil, map[string]string{"id": categoryID.String()})
		rr := httptest.NewRecorder()

		handler.GetCategory()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var envelope response.APIResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
	})

	t.Run("Failure - Unknown Category", func(t *testing.T) {
		mockService := new(mocks.CategoryService)
		handler := handlers.NewCategoryHandler(mockService)

		mockService.On("GetCategoryByID", mock.Anything, categoryID).
			Return(nil, appErrors.NotFoundError("Category not found")).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/categories/"+categoryID.String(),
			nil, map[string]string{"id": categoryID.String()})
		rr := httptest.NewRecorder()

		handler.GetCategory()(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCategoryHandler_ListCategories(t *testing.T) {
	t.Run("Success - Categories Returned", func(t *testing.T) {
		mockService := new(mocks.CategoryService)
		handler := handlers.NewCategoryHandler(mockService)

		mockService.On("ListCategories", mock.Anything).
			Return([]models.Category{{ID: uuid.New(), Name: "Peripherals"}}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/categories", nil, nil)
		rr := httptest.NewRecorder()

		handler.ListCategories()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		mockService.AssertExpectations(t)
	})
}

func TestCategoryHandler_DeleteCategory(t *testing.T) {
	adminID := uuid.New()
	categoryID := uuid.New()

	t.Run("Success - Category Deleted", func(t *testing.T) {
		mockService := new(mocks.CategoryService)
		handler := handlers.NewCategoryHandler(mockService)

		mockService.On("DeleteCategory", mock.Anything, categoryID).Return(nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/categories/"+categoryID.String(),
			nil, adminID, models.RoleAdmin, map[string]string{"id": categoryID.String()})
		rr := httptest.NewRecorder()

		handler.DeleteCategory()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Category Still Has Products", func(t *testing.T) {
		mockService := new(mocks.CategoryService)
		handler := handlers.NewCategoryHandler(mockService)

		mockService.On("DeleteCategory", mock.Anything, categoryID).
			Return(appErrors.BadRequestError("Category still has products")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/categories/"+categoryID.String(),
			nil, adminID, models.RoleAdmin, map[string]string{"id": categoryID.String()})
		rr := httptest.NewRecorder()

		handler.DeleteCategory()(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
