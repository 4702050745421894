package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/feedbackhub/internal/common"
	"github.com/dmitrijs2005/feedbackhub/internal/dbx"
	"github.com/dmitrijs2005/feedbackhub/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectUserWithManager = `SELECT u.id, u.name, u.email, u.password_hash, u.role, u.manager_id, u.created_at,
		m.name, m.email
		 FROM users u
		 LEFT JOIN users m ON m.id = u.manager_id
		 `

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (name, email, password_hash, role, manager_id)
         VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Name, user.Email, user.PasswordHash, string(user.Role), user.ManagerID).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: email %s", common.ErrConflict, user.Email)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, selectUserWithManager+`WHERE u.email = $1`, email)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, selectUserWithManager+`WHERE u.id = $1`, id)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	user := &models.User{}
	var (
		role         string
		managerID    sql.NullInt64
		managerName  sql.NullString
		managerEmail sql.NullString
	)

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &role, &managerID, &user.CreatedAt,
		&managerName, &managerEmail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.Role = models.Role(role)
	if managerID.Valid {
		id := managerID.Int64
		user.ManagerID = &id
		user.Manager = &models.ManagerSummary{ID: id, Name: managerName.String, Email: managerEmail.String}
	}

	return user, nil
}

func (r *PostgresRepository) ListManagers(ctx context.Context) ([]models.ManagerSummary, error) {
	query :=
		`SELECT id, name, email FROM users
		 WHERE role = 'manager'
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	managers := []models.ManagerSummary{}
	for rows.Next() {
		var m models.ManagerSummary
		if err := rows.Scan(&m.ID, &m.Name, &m.Email); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		managers = append(managers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return managers, nil
}

func (r *PostgresRepository) ListByManager(ctx context.Context, managerID int64) ([]*models.User, error) {
	query :=
		`SELECT id, name, email, role, manager_id, created_at FROM users
		 WHERE manager_id = $1 AND role = 'employee'
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, managerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	employees := []*models.User{}
	for rows.Next() {
		u := &models.User{}
		var (
			role string
			mid  int64
		)
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &role, &mid, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		u.Role = models.Role(role)
		u.ManagerID = &mid
		employees = append(employees, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return employees, nil
}
