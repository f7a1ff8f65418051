package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type employmentRepository struct {
	db *sql.DB
}

func NewEmploymentRepository(db *sql.DB) repository.EmploymentRepository {
	return &employmentRepository{db: db}
}

func (r *employmentRepository) Create(ctx context.Context, e *domain.Employment) error {
	query := `INSERT INTO employments (client_id, employer, position, salary_cents) VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, e.ClientID, e.Employer, e.Position, e.SalaryCents).Scan(&e.ID)
}

func (r *employmentRepository) GetByID(ctx context.Context, id int32) (*domain.Employment, error) {
	e := &domain.Employment{}
	query := `SELECT id, client_id, employer, position, salary_cents FROM employments WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.ClientID, &e.Employer, &e.Position, &e.SalaryCents)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError("employment", id)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *employmentRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError("employment", id)
	}
	return nil
}

func (r *employmentRepository) ListByClient(ctx context.Context, clientID int32) ([]domain.Employment, error) {
	query := `SELECT id, client_id, employer, position, salary_cents FROM employments WHERE client_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var emps []domain.Employment
	for rows.Next() {
		var e domain.Employment
		if err := rows.Scan(&e.ID, &e.ClientID, &e.Employer, &e.Position, &e.SalaryCents); err != nil {
			return nil, err
		}
		emps = append(emps, e)
	}
	return emps, rows.Err()
}

func (r *employmentRepository) CountByClient(ctx context.Context, clientID int32) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM employments WHERE client_id = $1`, clientID).Scan(&count)
	return count, err
}

func (r *employmentRepository) TotalSalaryByClient(ctx context.Context, clientID int32) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(salary_cents), 0) FROM employments WHERE client_id = $1`, clientID).Scan(&total)
	return total, err
}
