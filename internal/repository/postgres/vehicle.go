package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, registration, plate, brand, model, year, color, daily_rate_cents, status, owner_id, owner_type, created_on, updated_on`

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (registration, plate, brand, model, year, color, daily_rate_cents, status, owner_id, owner_type, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	return r.db.QueryRowContext(ctx, query, v.Registration, v.Plate, v.Brand, v.Model, v.Year, v.Color,
		v.DailyRateCents, v.Status, v.OwnerID, v.OwnerType, time.Now(), time.Now()).Scan(&v.ID)
}

func scanVehicle(scan func(dest ...interface{}) error) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	var createdOn, updatedOn time.Time
	err := scan(&v.ID, &v.Registration, &v.Plate, &v.Brand, &v.Model, &v.Year, &v.Color,
		&v.DailyRateCents, &v.Status, &v.OwnerID, &v.OwnerType, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	v.CreatedOn = createdOn.Format(time.RFC3339)
	v.UpdatedOn = updatedOn.Format(time.RFC3339)
	return v, nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1`, id)
	v, err := scanVehicle(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError("vehicle", id)
	}
	return v, err
}

func (r *vehicleRepository) GetByRegistration(ctx context.Context, registration string) (*domain.Vehicle, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE registration = $1`, registration)
	v, err := scanVehicle(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundKeyError("vehicle", registration)
	}
	return v, err
}

func (r *vehicleRepository) GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE plate = $1`, plate)
	v, err := scanVehicle(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundKeyError("vehicle", plate)
	}
	return v, err
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET registration=$1, plate=$2, brand=$3, model=$4, year=$5, color=$6,
	          daily_rate_cents=$7, status=$8, owner_id=$9, owner_type=$10, updated_on=$11 WHERE id=$12`
	_, err := r.db.ExecContext(ctx, query, v.Registration, v.Plate, v.Brand, v.Model, v.Year, v.Color,
		v.DailyRateCents, v.Status, v.OwnerID, v.OwnerType, time.Now(), v.ID)
	return err
}

func (r *vehicleRepository) UpdateStatus(ctx context.Context, id int32, status domain.VehicleStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE vehicles SET status=$1, updated_on=$2 WHERE id=$3`, status, time.Now(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError("vehicle", id)
	}
	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError("vehicle", id)
	}
	return nil
}

func (r *vehicleRepository) ListByStatus(ctx context.Context, status domain.VehicleStatus) ([]domain.Vehicle, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE status = $1 ORDER BY daily_rate_cents`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectVehicles(rows)
}

func (r *vehicleRepository) Search(ctx context.Context, brand, model string, year int32, maxRateCents int64) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE status = $1`
	args := []interface{}{domain.VehicleStatusAvailable}
	idx := 2
	if brand != "" {
		query += ` AND brand ILIKE '%' || $` + itoa(idx) + ` || '%'`
		args = append(args, brand)
		idx++
	}
	if model != "" {
		query += ` AND model ILIKE '%' || $` + itoa(idx) + ` || '%'`
		args = append(args, model)
		idx++
	}
	if year > 0 {
		query += ` AND year = $` + itoa(idx)
		args = append(args, year)
		idx++
	}
	if maxRateCents > 0 {
		query += ` AND daily_rate_cents <= $` + itoa(idx)
		args = append(args, maxRateCents)
		idx++
	}
	query += ` ORDER BY daily_rate_cents`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectVehicles(rows)
}

func (r *vehicleRepository) CountByStatus(ctx context.Context, status domain.VehicleStatus) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM vehicles WHERE status = $1`, status).Scan(&count)
	return count, err
}

func collectVehicles(rows *sql.Rows) ([]domain.Vehicle, error) {
	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows.Scan)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, *v)
	}
	return vehicles, rows.Err()
}
