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

type contractRepository struct {
	db *sql.DB
}

func NewContractRepository(db *sql.DB) repository.ContractRepository {
	return &contractRepository{db: db}
}

const contractColumns = `id, contract_number, rental_order_id, bank_id, signature_date, start_date, end_date, value_cents, credit_cents, interest_rate_pct, type, status, terms, created_on, updated_on`

func (r *contractRepository) Create(ctx context.Context, c *domain.Contract) error {
	query := `INSERT INTO contracts (contract_number, rental_order_id, bank_id, signature_date, start_date, end_date, value_cents, credit_cents, interest_rate_pct, type, status, terms, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.ContractNumber, c.RentalOrderID, c.BankID, c.SignatureDate,
		c.StartDate, c.EndDate, c.ValueCents, c.CreditCents, c.InterestRatePct, c.Type, c.Status, c.Terms,
		time.Now(), time.Now()).Scan(&c.ID)
}

func scanContract(scan func(dest ...interface{}) error) (*domain.Contract, error) {
	c := &domain.Contract{}
	var signatureDate, createdOn, updatedOn time.Time
	var startDate, endDate sql.NullTime
	err := scan(&c.ID, &c.ContractNumber, &c.RentalOrderID, &c.BankID, &signatureDate, &startDate, &endDate,
		&c.ValueCents, &c.CreditCents, &c.InterestRatePct, &c.Type, &c.Status, &c.Terms, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	c.SignatureDate = signatureDate.Format(utils.DateLayout)
	if startDate.Valid {
		s := startDate.Time.Format(utils.DateLayout)
		c.StartDate = &s
	}
	if endDate.Valid {
		e := endDate.Time.Format(utils.DateLayout)
		c.EndDate = &e
	}
	c.CreatedOn = createdOn.Format(time.RFC3339)
	c.UpdatedOn = updatedOn.Format(time.RFC3339)
	return c, nil
}

func (r *contractRepository) GetByID(ctx context.Context, id int32) (*domain.Contract, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+contractColumns+` FROM contracts WHERE id = $1`, id)
	c, err := scanContract(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError("contract", id)
	}
	return c, err
}

func (r *contractRepository) GetByNumber(ctx context.Context, number string) (*domain.Contract, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+contractColumns+` FROM contracts WHERE contract_number = $1`, number)
	c, err := scanContract(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundKeyError("contract", number)
	}
	return c, err
}

func (r *contractRepository) GetByOrderID(ctx context.Context, orderID int32) (*domain.Contract, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+contractColumns+` FROM contracts WHERE rental_order_id = $1`, orderID)
	c, err := scanContract(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError("contract for order", orderID)
	}
	return c, err
}

func (r *contractRepository) Update(ctx context.Context, c *domain.Contract) error {
	query := `UPDATE contracts SET bank_id=$1, credit_cents=$2, interest_rate_pct=$3, type=$4, status=$5, terms=$6, updated_on=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, c.BankID, c.CreditCents, c.InterestRatePct, c.Type, c.Status, c.Terms, time.Now(), c.ID)
	return err
}

func (r *contractRepository) ListByBank(ctx context.Context, bankID int32) ([]domain.Contract, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+contractColumns+` FROM contracts WHERE bank_id = $1 ORDER BY signature_date DESC`, bankID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectContracts(rows)
}

func (r *contractRepository) ListByStatus(ctx context.Context, status domain.ContractStatus) ([]domain.Contract, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+contractColumns+` FROM contracts WHERE status = $1 ORDER BY signature_date DESC`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectContracts(rows)
}

func (r *contractRepository) ListWithCredit(ctx context.Context) ([]domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE type IN ($1, $2) ORDER BY signature_date DESC`
	rows, err := r.db.QueryContext(ctx, query, domain.ContractTypeCredit, domain.ContractTypeRentalWithCredit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectContracts(rows)
}

func (r *contractRepository) ListExpiredActive(ctx context.Context, today string) ([]domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE status = $1 AND end_date IS NOT NULL AND end_date < $2`
	rows, err := r.db.QueryContext(ctx, query, domain.ContractStatusActive, today)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectContracts(rows)
}

func (r *contractRepository) CountByStatus(ctx context.Context, status domain.ContractStatus) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM contracts WHERE status = $1`, status).Scan(&count)
	return count, err
}

func collectContracts(rows *sql.Rows) ([]domain.Contract, error) {
	var contracts []domain.Contract
	for rows.Next() {
		c, err := scanContract(rows.Scan)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, *c)
	}
	return contracts, rows.Err()
}
