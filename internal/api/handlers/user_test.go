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

func TestUserHandler_GetProfile(t *testing.T) {
	accountID := uuid.New()

	t.Run("Success - Customer Profile", func(t *testing.T) {
		mockService := new(mocks.UserService)
		handler := handlers.NewUserHandler(mockService)

		mockService.On("GetCustomerProfile", mock.Anything, accountID).
			Return(&models.Customer{ID: uuid.New(), AccountID: accountID, FullName: "Jane Doe"}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/users/profile",
			nil, accountID, models.RoleCustomer, nil)
		rr := httptest.NewRecorder()

		handler.GetProfile()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertNotCalled(t, "GetSellerProfile", mock.Anything, mock.Anything)
	})

	t.Run("Success - Seller Profile", func(t *testing.T) {
		mockService := new(mocks.UserService)
		handler := handlers.NewUserHandler(mockService)

		mockService.On("GetSellerProfile", mock.Anything, accountID).
			Return(&models.Seller{ID: uuid.New(), AccountID: accountID, StoreName: "Audio Shack"}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/users/profile",
			nil, accountID, models.RoleSeller, nil)
		rr := httptest.NewRecorder()

		handler.GetProfile()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertNotCalled(t, "GetCustomerProfile", mock.Anything, mock.Anything)
	})

	t.Run("Success - Admin Gets Account Summary", func(t *testing.T) {
		mockService := new(mocks.UserService)
		handler := handlers.NewUserHandler(mockService)

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/users/profile",
			nil, accountID, models.RoleAdmin, nil)
		rr := httptest.NewRecorder()

		handler.GetProfile()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var envelope response.APIResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		mockService.AssertNotCalled(t, "GetCustomerProfile", mock.Anything, mock.Anything)
		mockService.AssertNotCalled(t, "GetSellerProfile", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Missing Claims", func(t *testing.T) {
		mockService := new(mocks.UserService)
		handler := handlers.NewUserHandler(mockService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/users/profile", nil, nil)
		rr := httptest.NewRecorder()

		handler.GetProfile()(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestUserHandler_UpdateCustomerProfile(t *testing.T) {
	accountID := uuid.New()

	t.Run("Success - Profile Updated", func(t *testing.T) {
		mockService := new(mocks.UserService)
		handler := handlers.NewUserHandler(mockService)

		updated := &models.Customer{ID: uuid.New(), AccountID: accountID, FullName: "Tran Thi B"}

		mockService.On("UpdateCustomerProfile", mock.Anything, accountID, mock.MatchedBy(func(req *models.UpdateCustomerRequest) bool {
			return req.FullName != nil && *req.FullName == "Tran Thi B"
		})).Return(updated, nil).Once()

		body := []byte(`{"full_name":"Tran Thi B","phone":"0901234567"}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/users/customer",
			bytes.NewReader(body), accountID, models.RoleCustomer, nil)
		rr := httptest.NewRecorder()

		handler.UpdateCustomerProfile()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Profile Not Found", func(t *testing.T) {
		mockService := new(mocks.UserService)
		handler := handlers.NewUserHandler(mockService)

		mockService.On("UpdateCustomerProfile", mock.Anything, accountID, mock.Anything).
			Return(nil, appErrors.NotFoundError("Customer profile not found")).Once()

		body := []byte(`{"full_name":"Tran Thi B"}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/users/customer",
			bytes.NewReader(body), accountID, models.RoleCustomer, nil)
		rr := httptest.NewRecorder()

		handler.UpdateCustomerProfile()(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUserHandler_UpdateSellerProfile(t *testing.T) {
	accountID := uuid.New()

	t.Run("Success - Store Renamed", func(t *testing.T) {
		mockService := new(mocks.UserService)
		handler := handlers.NewUserHandler(mockService)

		updated := &models.Seller{ID: uuid.New(), AccountID: accountID, StoreName: "Saigon Audio"}

		mockService.On("UpdateSellerProfile", mock.Anything, accountID, mock.MatchedBy(func(req *models.UpdateSellerRequest) bool {
			return req.StoreName != nil && *req.StoreName == "Saigon Audio"
		})).Return(updated, nil).Once()

		body := []byte(`{"store_name":"Saigon Audio"}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/users/seller",
			bytes.NewReader(body), accountID, models.RoleSeller, nil)
		rr := httptest.NewRecorder()

		handler.UpdateSellerProfile()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Body", func(t *testing.T) {
		mockService := new(mocks.UserService)
		handler := handlers.NewUserHandler(mockService)

		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/users/seller",
			bytes.NewReader([]byte(`{`)), accountID, models.RoleSeller, nil)
		rr := httptest.NewRecorder()

		handler.UpdateSellerProfile()(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "UpdateSellerProfile", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserHandler_ListSellers(t *testing.T) {
	adminID := uuid.New()

	t.Run("Success - Sellers Returned", func(t *testing.T) {
		mockService := new(mocks.UserService)
		handler := handlers.NewUserHandler(mockService)

		mockService.On("ListSellers", mock.Anything).
			Return([]models.Seller{{ID: uuid.New(), StoreName: "Audio Shack", Approved: true}}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/sellers",
			nil, adminID, models.RoleAdmin, nil)
		rr := httptest.NewRecorder()

		handler.ListSellers()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		mockService.AssertExpectations(t)
	})
}

func TestUserHandler_ApproveSeller(t *testing.T) {
	adminID := uuid.New()
	sellerID := uuid.New()

	t.Run("Success - Seller Approved", func(t *testing.T) {
		mockService := new(mocks.UserService)
		handler := handlers.NewUserHandler(mockService)

		mockService.On("ApproveSeller", mock.Anything, sellerID, true).
			Return(&models.Seller{ID: sellerID, Approved: true}, nil).Once()

		body := []byte(`{"approved":true}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPatch, "/api/v1/sellers/"+sellerID.String()+"/approval",
			bytes.NewReader(body), adminID, models.RoleAdmin, map[string]string{"id": sellerID.String()})
		rr := httptest.NewRecorder()

		handler.ApproveSeller()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		mockService.AssertExpectations(t)
	})

	t.Run("Success - Approval Revoked", func(t *testing.T) {
		mockService := new(mocks.UserService)
		handler := handlers.NewUserHandler(mockService)

		mockService.On("ApproveSeller", mock.Anything, sellerID, false).
			Return(&models.Seller{ID: sellerID, Approved: false}, nil).Once()

		body := []byte(`{"approved":false}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPatch, "/api/v1/sellers/"+sellerID.String()+"/approval",
			bytes.NewReader(body), adminID, models.RoleAdmin, map[string]string{"id": sellerID.String()})
		rr := httptest.NewRecorder()

		handler.ApproveSeller()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Missing Approval Flag", func(t *testing.T) {
		mockService := new(mocks.UserService)
		handler := handlers.NewUserHandler(mockService)

		body := []byte(`{}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPatch, "/api/v1/sellers/"+sellerID.String()+"/approval",
			bytes.NewReader(body), adminID, models.RoleAdmin, map[string]string{"id": sellerID.String()})
		rr := httptest.NewRecorder()

		handler.ApproveSeller()(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "ApproveSeller", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Unknown Seller", func(t *testing.T) {
		mockService := new(mocks.UserService)
		handler := handlers.NewUserHandler(mockService)

		mockService.On("ApproveSeller", mock.Anything, sellerID, true).
			Return(nil, appErrors.NotFoundError("Seller not found")).Once()

		body := []byte(`{"approved":true}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPatch, "/api/v1/sellers/"+sellerID.String()+"/approval",
			bytes.NewReader(body), adminID, models.RoleAdmin, map[string]string{"id": sellerID.String()})
		rr := httptest.NewRecorder()

		handler.ApproveSeller()(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
