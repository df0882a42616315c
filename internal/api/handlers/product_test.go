package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
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

func TestProductHandler_CreateProduct(t *testing.T) {
	accountID := uuid.New()
	categoryID := uuid.New()

	t.Run("Success - Product Created", func(t *testing.T) {
		mockService := new(mocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		product := &models.Product{
			ID:         uuid.New(),
			CategoryID: categoryID,
			Name:       "Mechanical Keyboard",
			Price:      decimal.RequireFromString("59.90"),
			Stock:      10,
			Active:     true,
		}

		mockService.On("CreateProduct", mock.Anything, accountID, mock.MatchedBy(func(req *models.CreateProductRequest) bool {
			return req.Name == "Mechanical Keyboard" && req.CategoryID == categoryID
		})).Return(product, nil).Once()

		body := []byte(`{"category_id":"` + categoryID.String() + `","name":"Mechanical Keyboard","price":"59.90","stock":10}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/products",
			bytes.NewReader(body), accountID, models.RoleSeller, nil)
		rr := httptest.NewRecorder()

		handler.CreateProduct()(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Name Too Short", func(t *testing.T) {
		mockService := new(mocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		body := []byte(`{"category_id":"` + categoryID.String() + `","name":"ab","price":"59.90","stock":10}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/products",
			bytes.NewReader(body), accountID, models.RoleSeller, nil)
		rr := httptest.NewRecorder()

		handler.CreateProduct()(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Unapproved Seller", func(t *testing.T) {
		mockService := new(mocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		mockService.On("CreateProduct", mock.Anything, accountID, mock.Anything).
			Return(nil, appErrors.ForbiddenError("Seller is not approved")).Once()

		body := []byte(`{"category_id":"` + categoryID.String() + `","name":"Mechanical Keyboard","price":"59.90","stock":10}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/products",
			bytes.NewReader(body), accountID, models.RoleSeller, nil)
		rr := httptest.NewRecorder()

		handler.CreateProduct()(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestProductHandler_GetProduct(t *testing.T) {
	productID := uuid.New()

	t.Run("Success - Product Returned", func(t *testing.T) {
		mockService := new(mocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		mockService.On("GetProductByID", mock.Anything, productID).
			Return(&models.Product{ID: productID, Name: "Mechanical Keyboard", Active: true}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products/"+productID.String(),
			nil, map[string]string{"id": productID.String()})
		rr := httptest.NewRecorder()

		handler.GetProduct()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var envelope response.APIResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
	})

	t.Run("Failure - Invalid ID", func(t *testing.T) {
		mockService := new(mocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products/not-a-uuid",
			nil, map[string]string{"id": "not-a-uuid"})
		rr := httptest.NewRecorder()

		handler.GetProduct()(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "GetProductByID", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Unknown Product", func(t *testing.T) {
		mockService := new(mocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		mockService.On("GetProductByID", mock.Anything, productID).
			Return(nil, appErrors.NotFoundError("Product not found")).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products/"+productID.String(),
			nil, map[string]string{"id": productID.String()})
		rr := httptest.NewRecorder()

		handler.GetProduct()(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestProductHandler_ListProducts(t *testing.T) {
	t.Run("Success - Query Params Forwarded", func(t *testing.T) {
		mockService := new(mocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		categoryID := uuid.New()

		page := &models.PaginatedResponse{
			Data:     []models.Product{{ID: uuid.New(), Name: "Mechanical Keyboard"}},
			Total:    1,
			Page:     2,
			PageSize: 5,
		}

		mockService.On("ListProducts", mock.Anything, mock.MatchedBy(func(filter *models.ProductFilter) bool {
			return filter.Search == "keyboard" &&
				filter.CategoryID != nil && *filter.CategoryID == categoryID &&
				filter.Page == 2 && filter.PageSize == 5
		})).Return(page, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet,
			"/api/v1/products?search=keyboard&category_id="+categoryID.String()+"&page=2&page_size=5", nil, nil)
		rr := httptest.NewRecorder()

		handler.ListProducts()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		mockService.AssertExpectations(t)
	})
}

func TestProductHandler_DeleteProduct(t *testing.T) {
	accountID := uuid.New()
	productID := uuid.New()

	t.Run("Success - Product Deactivated", func(t *testing.T) {
		mockService := new(mocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		mockService.On("DeleteProduct", mock.Anything, accountID, productID).Return(nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/products/"+productID.String(),
			nil, accountID, models.RoleSeller, map[string]string{"id": productID.String()})
		rr := httptest.NewRecorder()

		handler.DeleteProduct()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Foreign Product", func(t *testing.T) {
		mockService := new(mocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		mockService.On("DeleteProduct", mock.Anything, accountID, productID).
			Return(appErrors.ForbiddenError("Product belongs to another seller")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/products/"+productID.String(),
			nil, accountID, models.RoleSeller, map[string]string{"id": productID.String()})
		rr := httptest.NewRecorder()

		handler.DeleteProduct()(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
