package postgres

import (
	"database/sql"
	"strconv"

	"carrental-backend/internal/repository"

	_ "github.com/lib/pq"
)

func itoa(i int) string { return strconv.Itoa(i) }

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.EmploymentRepository
	repository.VehicleRepository
	repository.OrderRepository
	repository.ContractRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                   db,
		UserRepository:       NewUserRepository(db),
		EmploymentRepository: NewEmploymentRepository(db),
		VehicleRepository:    NewVehicleRepository(db),
		OrderRepository:      NewOrderRepository(db),
		ContractRepository:   NewContractRepository(db),
	}
}
