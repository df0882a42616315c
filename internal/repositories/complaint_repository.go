package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/vietcommerce/marketplace/internal/models"
	"github.com/vietcommerce/marketplace/internal/utils"
)

type ComplaintRepository interface {
	CreateComplaint(ctx context.Context, complaint *models.Complaint) error
	GetComplaintByID(ctx context.Context, id uuid.UUID) (*models.Complaint, error)
	ListComplaintsByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Complaint, error)
	ListComplaints(ctx context.Context) ([]models.Complaint, error)
	UpdateComplaintStatus(ctx context.Context, id uuid.UUID, status models.ComplaintStatus, resolution string) error
}

type complaintRepository struct {
	DB *sql.DB
}

func NewComplaintRepo(db *sql.DB) ComplaintRepository {
	return &complaintRepository{DB: db}
}

func (r *complaintRepository) CreateComplaint(ctx context.Context, complaint *models.Complaint) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	evidence, err := json.Marshal(complaint.Evidence)
	if err != nil {
		return fmt.Errorf("failed to marshal complaint evidence: %w", err)
	}

	query := `
		INSERT INTO complaints (id, customer_id, order_id, content, evidence, status, resolution, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, '', NOW())
		RETURNING created_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		complaint.ID, complaint.CustomerID, complaint.OrderID, complaint.Content, evidence, complaint.Status).
		Scan(&complaint.CreatedAt)
}

func (r *complaintRepository) GetComplaintByID(ctx context.Context, id uuid.UUID) (*models.Complaint, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	complaint := &models.Complaint{}

	var evidence []byte

	err := r.DB.QueryRowContext(dbCtx,
		`SELECT id, customer_id, order_id, content, evidence, status, resolution, created_at FROM complaints WHERE id = $1`, id).
		Scan(&complaint.ID, &complaint.CustomerID, &complaint.OrderID, &complaint.Content,
			&evidence, &complaint.Status, &complaint.Resolution, &complaint.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}

	if len(evidence) > 0 {
		if err := json.Unmarshal(evidence, &complaint.Evidence); err != nil {
			return nil, fmt.Errorf("failed to unmarshal complaint evidence: %w", err)
		}
	}

	return complaint, nil
}

func (r *complaintRepository) ListComplaintsByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Complaint, error) {
	return r.listComplaints(ctx, `WHERE customer_id = $1`, customerID)
}

func (r *complaintRepository) ListComplaints(ctx context.Context) ([]models.Complaint, error) {
	return r.listComplaints(ctx, ``)
}

func (r *complaintRepository) listComplaints(ctx context.Context, where string, args ...any) ([]models.Complaint, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT id, customer_id, order_id, content, evidence, status, resolution, created_at
		FROM complaints
		%s
		ORDER BY created_at DESC
	`, where)

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}

	defer rows.Close()

	var complaints []models.Complaint

	for rows.Next() {

		complaint := models.Complaint{}

		var evidence []byte

		err := rows.Scan(&complaint.ID, &complaint.CustomerID, &complaint.OrderID, &complaint.Content,
			&evidence, &complaint.Status, &complaint.Resolution, &complaint.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan complaint: %w", err)
		}

		if len(evidence) > 0 {
			if err := json.Unmarshal(evidence, &complaint.Evidence); err != nil {
				return nil, fmt.Errorf("failed to unmarshal complaint evidence: %w", err)
			}
		}

		complaints = append(complaints, complaint)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return complaints, nil
}

func (r *complaintRepository) UpdateComplaintStatus(ctx context.Context, id uuid.UUID, status models.ComplaintStatus, resolution string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx,
		`UPDATE complaints SET status = $1, resolution = $2 WHERE id = $3`, status, resolution, id)
	if err != nil {
		return fmt.Errorf("failed to update complaint status: %w", err)
	}

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updatedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}
