package repository

import (
	"context"
	"database/sql"

	"invoicing-backend/internal/model"

	"github.com/jmoiron/sqlx"
)

type UsersRepository interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type UsersRepositoryImpl struct {
	db *sqlx.DB
}

func NewUsersRepository(db *sqlx.DB) *UsersRepositoryImpl {
	return &UsersRepositoryImpl{db: db}
}

var _ UsersRepository = (*UsersRepositoryImpl)(nil)

// GetByEmail returns (nil, nil) when no user matches.
func (r *UsersRepositoryImpl) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.db.GetContext(ctx, &u, `
		SELECT id, name, email, password, created_at, updated_at
		  FROM users
		 WHERE email = ? LIMIT 1
	`, email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
