package feedback

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/feedbackhub/internal/common"
	"github.com/dmitrijs2005/feedbackhub/internal/dbx"
	"github.com/dmitrijs2005/feedbackhub/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const feedbackColumns = `id, manager_id, employee_id, strengths, improvements, sentiment, acknowledged, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanFeedback(s scanner) (*models.Feedback, error) {
	fb := &models.Feedback{}
	var sentiment string
	if err := s.Scan(&fb.ID, &fb.ManagerID, &fb.EmployeeID, &fb.Strengths, &fb.Improvements,
		&sentiment, &fb.Acknowledged, &fb.CreatedAt); err != nil {
		return nil, err
	}
	// Stored as-is; callers that depend on the closed set validate it.
	fb.Sentiment = models.Sentiment(sentiment)
	return fb, nil
}

// Create inserts a new feedback row. CreatedAt is written explicitly so the
// service clock decides the timestamp.
func (r *PostgresRepository) Create(ctx context.Context, fb *models.Feedback) (*models.Feedback, error) {
	query := `
		INSERT INTO feedback (manager_id, employee_id, strengths, improvements, sentiment, acknowledged, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		fb.ManagerID, fb.EmployeeID, fb.Strengths, fb.Improvements, string(fb.Sentiment), fb.Acknowledged, fb.CreatedAt).
		Scan(&fb.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return fb, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Feedback, error) {
	return r.getOne(ctx, `SELECT `+feedbackColumns+` FROM feedback WHERE id = $1`, id)
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, id int64) (*models.Feedback, error) {
	return r.getOne(ctx, `SELECT `+feedbackColumns+` FROM feedback WHERE id = $1 FOR UPDATE`, id)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, id int64) (*models.Feedback, error) {
	fb, err := scanFeedback(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return fb, nil
}

func (r *PostgresRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]*models.Feedback, error) {
	return r.list(ctx, `SELECT `+feedbackColumns+` FROM feedback WHERE employee_id = $1 ORDER BY id`, employeeID)
}

func (r *PostgresRepository) ListByManagerTeam(ctx context.Context, managerID int64) ([]*models.Feedback, error) {
	query := `
		SELECT f.id, f.manager_id, f.employee_id, f.strengths, f.improvements, f.sentiment, f.acknowledged, f.created_at
		FROM feedback f
		JOIN users u ON u.id = f.employee_id
		WHERE u.manager_id = $1 AND u.role = 'employee'
		ORDER BY f.id
	`
	return r.list(ctx, query, managerID)
}

func (r *PostgresRepository) list(ctx context.Context, query string, arg int64) ([]*models.Feedback, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Feedback{}
	for rows.Next() {
		fb, err := scanFeedback(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, fb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) UpdateContent(ctx context.Context, fb *models.Feedback) error {
	query := `
		UPDATE feedback
		SET strengths = $2, improvements = $3, sentiment = $4
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, fb.ID, fb.Strengths, fb.Improvements, string(fb.Sentiment))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

// MarkAcknowledged sets acknowledged = TRUE. Running it on an already
// acknowledged row is harmless.
func (r *PostgresRepository) MarkAcknowledged(ctx context.Context, id int64) error {
	query := `
		UPDATE feedback
		SET acknowledged = TRUE
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
