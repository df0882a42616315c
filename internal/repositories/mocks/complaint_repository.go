package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/vietcommerce/marketplace/internal/models"
)

type ComplaintRepository struct {
	mock.Mock
}

func (m *ComplaintRepository) CreateComplaint(ctx context.Context, complaint *models.Complaint) error {
	args := m.Called(ctx, complaint)

	return args.Error(0)
}

func (m *ComplaintRepository) GetComplaintByID(ctx context.Context, id uuid.UUID) (*models.Complaint, error) {
	args := m.Called(ctx, id)

	var complaint *models.Complaint
	if args.Get(0) != nil {
		complaint = args.Get(0).(*models.Complaint)
	}

	return complaint, args.Error(1)
}

func (m *ComplaintRepository) ListComplaintsByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Complaint, error) {
	args := m.Called(ctx, customerID)

	var complaints []models.Complaint
	if args.Get(0) != nil {
		complaints = args.Get(0).([]models.Complaint)
	}

	return complaints, args.Error(1)
}

func (m *ComplaintRepository) ListComplaints(ctx context.Context) ([]models.Complaint, error) {
	args := m.Called(ctx)

	var complaints []models.Complaint
	if args.Get(0) != nil {
		complaints = args.Get(0).([]models.Complaint)
	}

	return complaints, args.Error(1)
}

func (m *ComplaintRepository) UpdateComplaintStatus(ctx context.Context, id uuid.UUID, status models.ComplaintStatus, resolution string) error {
	args := m.Called(ctx, id, status, resolution)

	return args.Error(0)
}
