package repository

import (
	"context"

	"invoicing-backend/internal/model"

	"github.com/jmoiron/sqlx"
)

type CustomersRepository interface {
	List(ctx context.Context) ([]model.Customer, error)
}

type CustomersRepositoryImpl struct {
	db *sqlx.DB
}

func NewCustomersRepository(db *sqlx.DB) *CustomersRepositoryImpl {
	return &CustomersRepositoryImpl{db: db}
}

var _ CustomersRepository = (*CustomersRepositoryImpl)(nil)

func (r *CustomersRepositoryImpl) List(ctx context.Context) ([]model.Customer, error) {
	customers := make([]model.Customer, 0)
	err := r.db.SelectContext(ctx, &customers, `
		SELECT id, name, email, created_at, updated_at
		  FROM customers
		 ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	return customers, nil
}
