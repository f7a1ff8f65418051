package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/utils"
)

type orderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `id, client_id, vehicle_id, start_date, end_date, total_amount_cents, status, evaluated_by, evaluation_notes, observations, created_on, updated_on`

func (r *orderRepository) Create(ctx context.Context, o *domain.RentalOrder) error {
	query := `INSERT INTO rental_orders (client_id, vehicle_id, start_date, end_date, total_amount_cents, status, evaluation_notes, observations, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRowContext(ctx, query, o.ClientID, o.VehicleID, o.StartDate, o.EndDate,
		o.TotalAmountCents, o.Status, o.EvaluationNotes, o.Observations, time.Now(), time.Now()).Scan(&o.ID)
}

func scanOrder(scan func(dest ...interface{}) error) (*domain.RentalOrder, error) {
	o := &domain.RentalOrder{}
	var startDate, endDate, createdOn, updatedOn time.Time
	err := scan(&o.ID, &o.ClientID, &o.VehicleID, &startDate, &endDate, &o.TotalAmountCents,
		&o.Status, &o.EvaluatedBy, &o.EvaluationNotes, &o.Observations, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	o.StartDate = startDate.Format(utils.DateLayout)
	o.EndDate = endDate.Format(utils.DateLayout)
	o.CreatedOn = createdOn.Format(time.RFC3339)
	o.UpdatedOn = updatedOn.Format(time.RFC3339)
	return o, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int32) (*domain.RentalOrder, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM rental_orders WHERE id = $1`, id)
	o, err := scanOrder(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError("order", id)
	}
	return o, err
}

func (r *orderRepository) Update(ctx context.Context, o *domain.RentalOrder) error {
	query := `UPDATE rental_orders SET status=$1, evaluated_by=$2, evaluation_notes=$3, observations=$4, total_amount_cents=$5, updated_on=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, o.Status, o.EvaluatedBy, o.EvaluationNotes, o.Observations, o.TotalAmountCents, time.Now(), o.ID)
	return err
}

func (r *orderRepository) ListByClient(ctx context.Context, clientID int32) ([]domain.RentalOrder, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+orderColumns+` FROM rental_orders WHERE client_id = $1 ORDER BY created_on DESC`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *orderRepository) ListByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.RentalOrder, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+orderColumns+` FROM rental_orders WHERE status = $1 ORDER BY created_on DESC`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

// ListPending returns the evaluation queue, oldest request first.
func (r *orderRepository) ListPending(ctx context.Context) ([]domain.RentalOrder, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+orderColumns+` FROM rental_orders WHERE status = $1 ORDER BY created_on ASC`, domain.OrderStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *orderRepository) FindConflicting(ctx context.Context, vehicleID int32, startDate, endDate string) ([]domain.RentalOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM rental_orders
	          WHERE vehicle_id = $1 AND status IN ($2, $3)
	            AND start_date <= $4 AND end_date >= $5`
	rows, err := r.db.QueryContext(ctx, query, vehicleID, domain.OrderStatusApproved, domain.OrderStatusActive, endDate, startDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *orderRepository) ListExpiredActive(ctx context.Context, today string) ([]domain.RentalOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM rental_orders WHERE status = $1 AND end_date < $2`
	rows, err := r.db.QueryContext(ctx, query, domain.OrderStatusActive, today)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *orderRepository) HasActiveByVehicle(ctx context.Context, vehicleID int32) (bool, error) {
	query := `SELECT count(*) FROM rental_orders WHERE vehicle_id = $1 AND status IN ($2, $3)`
	var count int32
	err := r.db.QueryRowContext(ctx, query, vehicleID, domain.OrderStatusApproved, domain.OrderStatusActive).Scan(&count)
	return count > 0, err
}

func (r *orderRepository) CountByStatus(ctx context.Context, status domain.OrderStatus) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rental_orders WHERE status = $1`, status).Scan(&count)
	return count, err
}

func (r *orderRepository) CountByClient(ctx context.Context, clientID int32) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rental_orders WHERE client_id = $1`, clientID).Scan(&count)
	return count, err
}

func collectOrders(rows *sql.Rows) ([]domain.RentalOrder, error) {
	var orders []domain.RentalOrder
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}
