package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (name, email, password_hash, cpf, active, role, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, u.Name, u.Email, u.PasswordHash, u.CPF, u.Active, u.Role, time.Now(), time.Now()).Scan(&u.ID)
}

func scanUser(row *sql.Row) (*domain.User, error) {
	u := &domain.User{}
	var createdOn, updatedOn time.Time
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CPF, &u.Active, &u.Role, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	u.CreatedOn = createdOn.Format(time.RFC3339)
	u.UpdatedOn = updatedOn.Format(time.RFC3339)
	return u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT id, name, email, password_hash, cpf, active, role, created_on, updated_on FROM users WHERE id = $1`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError("user", id)
	}
	return u, err
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, name, email, password_hash, cpf, active, role, created_on, updated_on FROM users WHERE email = $1`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundKeyError("user", email)
	}
	return u, err
}

func (r *userRepository) GetByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	query := `SELECT id, name, email, password_hash, cpf, active, role, created_on, updated_on FROM users WHERE cpf = $1`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, cpf))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundKeyError("user", cpf)
	}
	return u, err
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET name=$1, email=$2, password_hash=$3, active=$4, updated_on=$5 WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query, u.Name, u.Email, u.PasswordHash, u.Active, time.Now(), u.ID)
	return err
}

func (r *userRepository) SetActive(ctx context.Context, id int32, active bool) error {
	query := `UPDATE users SET active=$1, updated_on=$2 WHERE id=$3`
	res, err := r.db.ExecContext(ctx, query, active, time.Now(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError("user", id)
	}
	return nil
}

func (r *userRepository) CountClients(ctx context.Context, activeOnly bool) (int32, error) {
	query := `SELECT count(*) FROM users WHERE role = $1`
	args := []interface{}{domain.RoleClient}
	if activeOnly {
		query += " AND active = true"
	}
	var count int32
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

func (r *userRepository) CreateClientProfile(ctx context.Context, p *domain.ClientProfile) error {
	query := `INSERT INTO client_profiles (user_id, profession) VALUES ($1, $2)`
	_, err := r.db.ExecContext(ctx, query, p.UserID, p.Profession)
	return err
}

func (r *userRepository) GetClientProfile(ctx context.Context, userID int32) (*domain.ClientProfile, error) {
	p := &domain.ClientProfile{}
	query := `SELECT user_id, profession FROM client_profiles WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&p.UserID, &p.Profession)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError("client", userID)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *userRepository) UpdateClientProfile(ctx context.Context, p *domain.ClientProfile) error {
	query := `UPDATE client_profiles SET profession=$1 WHERE user_id=$2`
	_, err := r.db.ExecContext(ctx, query, p.Profession, p.UserID)
	return err
}

func (r *userRepository) CreateAgentProfile(ctx context.Context, p *domain.AgentProfile) error {
	query := `INSERT INTO agent_profiles (user_id, cnpj, agent_type) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, p.UserID, p.CNPJ, p.AgentType)
	return err
}

func (r *userRepository) GetAgentProfile(ctx context.Context, userID int32) (*domain.AgentProfile, error) {
	p := &domain.AgentProfile{}
	query := `SELECT user_id, cnpj, agent_type FROM agent_profiles WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&p.UserID, &p.CNPJ, &p.AgentType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError("agent", userID)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *userRepository) GetAgentByCNPJ(ctx context.Context, cnpj string) (*domain.AgentProfile, error) {
	p := &domain.AgentProfile{}
	query := `SELECT user_id, cnpj, agent_type FROM agent_profiles WHERE cnpj = $1`
	err := r.db.QueryRowContext(ctx, query, cnpj).Scan(&p.UserID, &p.CNPJ, &p.AgentType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundKeyError("agent", cnpj)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *userRepository) ListBanks(ctx context.Context) ([]domain.User, error) {
	query := `SELECT u.id, u.name, u.email, u.password_hash, u.cpf, u.active, u.role, u.created_on, u.updated_on
	          FROM users u JOIN agent_profiles a ON a.user_id = u.id
	          WHERE a.agent_type = $1 AND u.active = true ORDER BY u.name`
	rows, err := r.db.QueryContext(ctx, query, domain.AgentTypeBank)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		var createdOn, updatedOn time.Time
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CPF, &u.Active, &u.Role, &createdOn, &updatedOn); err != nil {
			return nil, err
		}
		u.CreatedOn = createdOn.Format(time.RFC3339)
		u.UpdatedOn = updatedOn.Format(time.RFC3339)
		users = append(users, u)
	}
	return users, rows.Err()
}
