package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	ErrNotFound  = errors.New("user not found")
	ErrNameTaken = errors.New("name already taken")
)

type Repository interface {
	FindByName(ctx context.Context, name string) (*User, error)
	Create(ctx context.Context, name string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Update(ctx context.Context, id int64, name, language, profileInfo string) error
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) FindByName(ctx context.Context, name string) (*User, error) {
	query := `SELECT id, name, language, profile_info FROM users WHERE name = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, name))
}

func (r *postgresRepo) Create(ctx context.Context, name string) (*User, error) {
	query := `INSERT INTO users (name) VALUES ($1) RETURNING id, name, language, profile_info`
	u, err := r.scanOne(r.db.QueryRowContext(ctx, query, name))
	if err != nil {
		var pqErr *pq.Error
		// 23505: unique_violation, the arbiter of concurrent first logins
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	return u, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*User, error) {
	query := `SELECT id, name, language, profile_info FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresRepo) Update(ctx context.Context, id int64, name, language, profileInfo string) error {
	query := `UPDATE users SET name = $1, language = $2, profile_info = $3 WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, name, language, profileInfo, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresRepo) scanOne(row *sql.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Language, &u.ProfileInfo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	return &u, nil
}
